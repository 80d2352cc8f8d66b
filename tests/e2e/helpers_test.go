//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	profilerepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/profile"
	statsrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/stats"
	"github.com/heartmarshall/positive-vibes/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/positive-vibes/internal/app"
	"github.com/heartmarshall/positive-vibes/internal/config"
	"github.com/heartmarshall/positive-vibes/internal/realtime"
	adminsvc "github.com/heartmarshall/positive-vibes/internal/service/admin"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Hub    *realtime.Hub
	logger *slog.Logger
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler backed by a real
// PostgreSQL container (shared via testhelper) and the in-process hub.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: bcrypt.MinCost,
		},
		App: config.AppConfig{
			PublicBaseURL: "https://vibes.test/",
			DefaultLocale: "en",
		},
		Realtime: config.RealtimeConfig{
			Driver:            config.RealtimeDriverMemory,
			SubscriberBuffer:  16,
			HeartbeatInterval: time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	hub := realtime.NewHub(logger, cfg.Realtime.SubscriberBuffer)
	t.Cleanup(func() { _ = hub.Close() })

	handler, err := app.NewHandler(cfg, logger, pool, hub)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{
		URL:    srv.URL,
		Client: client,
		Pool:   pool,
		Hub:    hub,
		logger: logger,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// api sends a JSON request under /api/v1 and returns status + decoded body.
func (ts *testServer) api(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	resp := ts.do(t, method, "/api/v1"+path, body, token)
	defer resp.Body.Close()

	var result map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// page fetches an HTML page and returns the response with its body read.
func (ts *testServer) page(t *testing.T, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

// ---------------------------------------------------------------------------
// Fixtures.
// ---------------------------------------------------------------------------

type testUser struct {
	Email    string
	Password string
	Username string
	Access   string
	Refresh  string
}

// uniqueUsername returns a valid username that does not collide across tests
// sharing the container.
func uniqueUsername(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// signUp registers a new account with a profile through the API.
func signUp(t *testing.T, ts *testServer) testUser {
	t.Helper()

	u := testUser{
		Username: uniqueUsername("u"),
		Password: "correct-horse",
	}
	u.Email = fmt.Sprintf("%s@example.com", u.Username)

	status, body := ts.api(t, http.MethodPost, "/auth/signup", map[string]any{
		"email":    u.Email,
		"password": u.Password,
		"username": u.Username,
	}, "")
	require.Equal(t, http.StatusCreated, status, "signup body: %v", body)

	u.Access, _ = body["accessToken"].(string)
	u.Refresh, _ = body["refreshToken"].(string)
	require.NotEmpty(t, u.Access)
	require.NotEmpty(t, u.Refresh)
	return u
}

// signIn returns fresh tokens for u, picking up any role change.
func signIn(t *testing.T, ts *testServer, u testUser) testUser {
	t.Helper()

	status, body := ts.api(t, http.MethodPost, "/auth/signin", map[string]any{
		"email":    u.Email,
		"password": u.Password,
	}, "")
	require.Equal(t, http.StatusOK, status, "signin body: %v", body)

	u.Access, _ = body["accessToken"].(string)
	u.Refresh, _ = body["refreshToken"].(string)
	return u
}

// makeAdmin grants the admin role out of band, the way the promote command does.
func makeAdmin(t *testing.T, ts *testServer, u testUser) testUser {
	t.Helper()

	svc := adminsvc.NewService(ts.logger, statsrepo.New(ts.Pool), profilerepo.New(ts.Pool))
	_, err := svc.SetAdmin(context.Background(), u.Username)
	require.NoError(t, err)

	return signIn(t, ts, u)
}

// sessionCookies returns the cookies a browser would hold after signing in as u.
func sessionCookies(u testUser) []*http.Cookie {
	return []*http.Cookie{
		{Name: "vibes_access", Value: u.Access},
		{Name: "vibes_refresh", Value: u.Refresh},
	}
}
