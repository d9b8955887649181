package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"babytracker/internal/server/auth"
)

// Context keys set by the session gate for downstream handlers.
const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// publicPrefixes lists the paths reachable without a session: the login page
// and endpoint, the session probe, and static assets.
var publicPrefixes = []string{
	"/login",
	"/api/auth/login",
	"/api/auth/session",
	"/static",
	"/favicon",
	"/manifest",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// sessionAuth gates every non-public route on a valid session cookie.
// API callers get a 401 JSON body; page requests are redirected to /login.
func (s *Server) sessionAuth() gin.HandlerFunc {
	secret := []byte(s.config.SessionSecret)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(path) {
			c.Next()
			return
		}

		if token, err := c.Cookie(SessionCookieName); err == nil {
			if claims, err := auth.ParseSessionToken(token, secret); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxUsername, claims.Username)
				c.Next()
				return
			}
		}

		if strings.HasPrefix(path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
