package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"babytracker/internal/common"
	"babytracker/internal/server/auth"
	"babytracker/internal/server/models"
	"babytracker/internal/server/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createEventRequest struct {
	Type          models.EventType `json:"type"`
	Timestamp     time.Time        `json:"timestamp"`
	Notes         *string          `json:"notes"`
	Duration      *int             `json:"duration"`
	DuringFeeding *bool            `json:"duringFeeding"`
}

type updateEventRequest struct {
	Type      *models.EventType `json:"type"`
	Timestamp *time.Time        `json:"timestamp"`
	StartTime *time.Time        `json:"startTime"`
	Notes     *string           `json:"notes"`
	Duration  *int              `json:"duration"`
}

// login verifies credentials and, on success, sets the session cookie and
// returns the user's public identity.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateSessionToken(user.ID, user.Username, []byte(s.config.SessionSecret), s.config.SessionValidityDuration)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error generating session token", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetCookie(SessionCookieName, token, int(s.config.SessionValidityDuration.Seconds()), "/", "", s.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": user.ID, "username": user.Username},
	})
}

// logout clears the session cookie.
func (s *Server) logout(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// session reports the identity asserted by the cookie, or the anonymous
// session when the cookie is absent or invalid. Always 200.
func (s *Server) session(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		c.JSON(http.StatusOK, models.AnonymousSession())
		return
	}

	claims, err := auth.ParseSessionToken(token, []byte(s.config.SessionSecret))
	if err != nil {
		c.JSON(http.StatusOK, models.AnonymousSession())
		return
	}

	c.JSON(http.StatusOK, models.Session{
		UserID:     claims.UserID,
		Username:   claims.Username,
		IsLoggedIn: true,
	})
}

// listEvents returns the most recent events, newest first. The optional
// limit query parameter caps the result.
func (s *Server) listEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	events, err := s.events.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error fetching events", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// createEvent records a new event attributed to the session user.
func (s *Server) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type and timestamp are required"})
		return
	}
	// A zero duration means "not recorded", same as leaving it out.
	if req.Duration != nil && *req.Duration == 0 {
		req.Duration = nil
	}

	event, err := s.events.Create(c.Request.Context(), c.GetString(ctxUserID), services.CreateEventParams{
		Type:          req.Type,
		Timestamp:     req.Timestamp,
		Notes:         req.Notes,
		Duration:      req.Duration,
		DuringFeeding: req.DuringFeeding,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": createValidationMessage(req)})
			return
		}
		s.logger.Error(c.Request.Context(), "error creating event", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// createValidationMessage names the first failed check of a rejected create.
func createValidationMessage(req createEventRequest) string {
	switch {
	case req.Type == "" || req.Timestamp.IsZero():
		return "Type and timestamp are required"
	case !req.Type.Valid():
		return "Invalid event type"
	default:
		return "Duration must be a positive number"
	}
}

// updateEvent applies a partial update. Any failure, including an unknown
// identifier, reports a plain server error.
func (s *Server) updateEvent(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	event, err := s.events.Update(c.Request.Context(), c.Param("id"), services.UpdateEventParams{
		Type:      req.Type,
		Timestamp: req.Timestamp,
		StartTime: req.StartTime,
		Notes:     req.Notes,
		Duration:  req.Duration,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "error updating event", "id", c.Param("id"), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// deleteEvent removes an event. Unknown identifiers report a plain server
// error, like updateEvent.
func (s *Server) deleteEvent(c *gin.Context) {
	if err := s.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.logger.Error(c.Request.Context(), "error deleting event", "id", c.Param("id"), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// eventStats aggregates the rolling window. The optional days query
// parameter overrides the default window.
func (s *Server) eventStats(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	stats, err := s.stats.ComputeStats(c.Request.Context(), days)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error computing stats", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
