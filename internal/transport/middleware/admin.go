package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use in REST handlers; AdminOnly wraps whole route groups.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects non-admin callers with 401 or 403 before the handler
// runs, using the API's JSON error body.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch RequireAdmin(r.Context()) {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeJSONError(w, http.StatusForbidden, "forbidden")
		}
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
