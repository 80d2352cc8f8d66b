package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/positive-vibes/internal/transport/middleware"
)

// APIPrefix is the root of every JSON endpoint.
const APIPrefix = "/api/v1"

// Handlers bundles the REST handlers mounted by Mount.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Messages  *MessageHandler
	Dashboard *DashboardHandler
	Admin     *AdminHandler
}

// Mount registers the probes and the /api/v1 routes on mux.
func Mount(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(pattern string, handler http.HandlerFunc) {
		method, path := splitPattern(pattern)
		mux.Handle(method+" "+APIPrefix+path, handler)
	}
	adminOnly := func(pattern string, handler http.HandlerFunc) {
		method, path := splitPattern(pattern)
		mux.Handle(method+" "+APIPrefix+path, middleware.AdminOnly(handler))
	}

	api("POST /auth/signup", h.Auth.SignUp)
	api("POST /auth/signin", h.Auth.SignIn)
	api("POST /auth/refresh", h.Auth.Refresh)
	api("POST /auth/signout", h.Auth.SignOut)
	api("GET /auth/session", h.Auth.Session)
	api("POST /auth/profile", h.Auth.CreateProfile)

	api("POST /messages", h.Messages.Submit)
	api("GET /users/{username}/messages", h.Messages.ListForUser)

	api("GET /dashboard/messages", h.Dashboard.Messages)
	api("GET /dashboard/stream", h.Dashboard.Stream)
	api("GET /dashboard/messages/{id}/share", h.Dashboard.Share)
	api("POST /dashboard/export", h.Dashboard.Export)

	adminOnly("GET /admin/overview", h.Admin.Overview)
	adminOnly("GET /admin/stats", h.Admin.Stats)
	adminOnly("GET /admin/top-users", h.Admin.TopUsers)
	adminOnly("GET /admin/users", h.Admin.Users)
	adminOnly("POST /admin/users/{username}/promote", h.Admin.Promote)

	api("GET /locales/{lang}", Locale)
}

func splitPattern(pattern string) (method, path string) {
	method, path, _ = strings.Cut(pattern, " ")
	return method, path
}
