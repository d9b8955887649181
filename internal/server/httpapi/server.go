// Package httpapi exposes the application over HTTP/JSON: cookie-based
// session auth plus the event and stats endpoints.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"babytracker/internal/logging"
	"babytracker/internal/server/config"
	"babytracker/internal/server/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "baby-tracker-session"

// Server holds the HTTP handler set and its dependencies.
type Server struct {
	config *config.Config
	logger logging.Logger
	users  *services.UserService
	events *services.EventService
	stats  *services.StatsService
}

// NewServer constructs a Server around the given services.
func NewServer(cfg *config.Config, logger logging.Logger, users *services.UserService, events *services.EventService, stats *services.StatsService) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		users:  users,
		events: events,
		stats:  stats,
	}
}

// Router builds the gin engine with the full route table. Every route runs
// behind the session gate except the public paths it allowlists.
func (s *Server) Router() *gin.Engine {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery(), s.sessionAuth())

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/login", s.login)
		authGroup.POST("/logout", s.logout)
		authGroup.GET("/session", s.session)

		eventsGroup := api.Group("/events")
		eventsGroup.GET("", s.listEvents)
		eventsGroup.POST("", s.createEvent)
		eventsGroup.GET("/stats", s.eventStats)
		eventsGroup.PATCH("/:id", s.updateEvent)
		eventsGroup.DELETE("/:id", s.deleteEvent)
	}

	return r
}

// requestLogger emits one structured line per request after it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
