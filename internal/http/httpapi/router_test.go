package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach/internal/adapter/repo"
	"outreach/internal/db"
	"outreach/internal/domain"
	"outreach/internal/http/handlers"
	"outreach/internal/infra"
)

type captureRelay struct {
	mu   sync.Mutex
	msgs []domain.Message
}

func (c *captureRelay) Send(_ context.Context, msg domain.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
	return nil
}

func newTestServer(t *testing.T, formLimit int) (*httptest.Server, *captureRelay) {
	t.Helper()
	ctx := context.Background()
	database, err := infra.OpenDatabase(ctx, "sqlite::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.Migrate(ctx, database, zerolog.Nop()))

	runner := infra.NewSQLRunner(database.DB, database.Dialect, zerolog.Nop())
	relay := &captureRelay{}
	app := handlers.NewApp(handlers.Deps{
		Users:        repo.NewUserRepository(runner),
		Courses:      repo.NewCourseRepository(runner),
		Partnerships: repo.NewPartnershipRepository(runner),
		Donations:    repo.NewDonationRepository(runner),
		LiveSessions: repo.NewLiveSessionRepository(runner),
		Relay:        relay,
		AdminEmail:   "admin@example.com",
		Logger:       zerolog.Nop(),
	})
	srv := httptest.NewServer(NewRouter(app, Options{
		Logger:         zerolog.Nop(),
		AllowedOrigins: []string{"*"},
		FormRateLimit:  formLimit,
	}))
	t.Cleanup(srv.Close)
	return srv, relay
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestRouterRegisterLoginAndListUsers(t *testing.T) {
	srv, _ := newTestServer(t, 0)

	status, payload := post(t, srv, "/api/auth/register", `{"firstName":"Ana","lastName":"Lee","email":"ana@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, status, payload)

	status, payload = post(t, srv, "/api/auth/register", `{"firstName":"Ana","lastName":"Lee","email":"ana@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", payload["message"])

	status, payload = post(t, srv, "/api/users/register", `{"firstName":"Ana","lastName":"Lee","email":"ana@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", payload["error"])

	status, payload = post(t, srv, "/api/auth/login", `{"email":"ana@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, status, payload)
	assert.Len(t, payload["token"], 64)

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	var users []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")
	assert.Equal(t, "ana@example.com", users[0]["email"])
}

func TestRouterLiveSessionFlow(t *testing.T) {
	srv, relay := newTestServer(t, 0)

	for _, email := range []string{"a@gmail.com", "b@gmail.com", "a@gmail.com"} {
		status, payload := post(t, srv, "/api/live-session-register", `{"email":"`+email+`"}`)
		require.Equal(t, http.StatusOK, status, payload)
	}

	status, payload := post(t, srv, "/api/notify-live-session", `{"title":"Go","date":"Mon","time":"9am","link":"https://meet"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Emails sent: 2, failed: 0", payload["message"])

	var invites []string
	for _, m := range relay.msgs {
		if strings.HasPrefix(m.Subject, "Upcoming Live Session") {
			invites = append(invites, m.To[0])
		}
	}
	assert.Equal(t, []string{"a@gmail.com", "b@gmail.com"}, invites)
}

func TestRouterRateLimitsRelayRoutesOnly(t *testing.T) {
	srv, _ := newTestServer(t, 1)

	status, _ := post(t, srv, "/api/volunteer", `{"name":"Budi","phone":"1"}`)
	require.Equal(t, http.StatusOK, status)
	status, payload := post(t, srv, "/api/refer-student", `{"name":"Budi","phone":"1"}`)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, false, payload["success"])

	for i := 0; i < 3; i++ {
		status, _ := post(t, srv, "/api/partnerships", `{"name":"Org","email":"o@example.com"}`)
		assert.Equal(t, http.StatusCreated, status)
	}
}

func TestRouterHealthAndDocs(t *testing.T) {
	srv, _ := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	docs, err := http.Get(srv.URL + "/api/docs")
	require.NoError(t, err)
	defer docs.Body.Close()
	assert.Contains(t, docs.Header.Get("Content-Type"), "text/html")
}
