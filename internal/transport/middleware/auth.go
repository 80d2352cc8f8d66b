package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// AccessCookie and RefreshCookie hold the token pair of browser sessions.
const (
	AccessCookie  = "vibes_access"
	RefreshCookie = "vibes_refresh"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Auth resolves the caller from a bearer header or, failing that, the access
// cookie. An invalid bearer token is rejected with 401; an invalid cookie is
// treated as anonymous so pages can still render and refresh it.
func Auth(validator tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromHeader := extractBearerToken(r), true
			if token == "" {
				token, fromHeader = accessCookie(r), false
			}
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if fromHeader {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func accessCookie(r *http.Request) string {
	c, err := r.Cookie(AccessCookie)
	if err != nil {
		return ""
	}
	return c.Value
}
