package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAuth_APIWithoutCookie(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/events", "/api/events/stats"} {
		w := f.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
	}
}

func TestSessionAuth_APIWithGarbageCookie(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/events", nil, &http.Cookie{Name: SessionCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_PublicPathsPass(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/auth/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/auth/login", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "reaches the handler instead of the gate")
}

func TestSessionAuth_ValidCookiePasses(t *testing.T) {
	f := newFixture(t)
	cookie := f.seedAndLogin(t, "alice", "password")

	w := f.do(t, http.MethodGet, "/api/events", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuth_LogoutRequiresSession(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path   string
		public bool
	}{
		{"/login", true},
		{"/api/auth/login", true},
		{"/api/auth/session", true},
		{"/static/app.css", true},
		{"/favicon.ico", true},
		{"/manifest.json", true},
		{"/api/events", false},
		{"/api/auth/logout", false},
		{"/", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.public, isPublicPath(tt.path), tt.path)
	}
}
