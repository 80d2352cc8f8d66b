package middleware

import (
	"net/http"
	"time"
)

// SessionTokens returns the access and refresh tokens carried by the
// request's cookies. Missing cookies yield empty strings.
func SessionTokens(r *http.Request) (access, refresh string) {
	if c, err := r.Cookie(AccessCookie); err == nil {
		access = c.Value
	}
	if c, err := r.Cookie(RefreshCookie); err == nil {
		refresh = c.Value
	}
	return access, refresh
}

// SetSessionCookies stores a token pair in HttpOnly cookies. The access
// cookie outlives the token itself so an expired token can still be
// presented for rotation together with the refresh cookie.
func SetSessionCookies(w http.ResponseWriter, access, refresh string, refreshTTL time.Duration, secure bool) {
	maxAge := int(refreshTTL.Seconds())
	http.SetCookie(w, sessionCookie(AccessCookie, access, maxAge, secure))
	http.SetCookie(w, sessionCookie(RefreshCookie, refresh, maxAge, secure))
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, sessionCookie(AccessCookie, "", -1, secure))
	http.SetCookie(w, sessionCookie(RefreshCookie, "", -1, secure))
}

func sessionCookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
