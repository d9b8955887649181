package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"babytracker/internal/dbx"
	"babytracker/internal/logging"
	"babytracker/internal/server/config"
	eventsrepo "babytracker/internal/server/repositories/events"
	usersrepo "babytracker/internal/server/repositories/users"
	"babytracker/internal/server/services"
)

// fakeRepoManager hands out fixed in-memory repositories regardless of the
// DB handle.
type fakeRepoManager struct {
	users  usersrepo.Repository
	events eventsrepo.Repository
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository { return m.events }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

type fixture struct {
	router *gin.Engine
	users  *services.UserService
	events *services.EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	rm := &fakeRepoManager{
		users:  usersrepo.NewMemoryRepository(),
		events: eventsrepo.NewMemoryRepository(),
	}
	users := services.NewUserService(nil, rm)
	events := services.NewEventService(nil, rm)
	stats := services.NewStatsService(nil, rm)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := NewServer(cfg, logger, users, events, stats)

	return &fixture{router: srv.Router(), users: users, events: events}
}

func (f *fixture) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// seedAndLogin creates a user and returns its session cookie.
func (f *fixture) seedAndLogin(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	_, err := f.users.Upsert(context.Background(), username, password)
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set by login")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func rfc3339(t time.Time) string { return t.Format(time.RFC3339Nano) }
