package i18n

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/text/language"
)

// CookieName is the cookie that persists an explicit language choice.
const CookieName = "lang"

const cookieMaxAge = 365 * 24 * time.Hour

// Resolver picks the active locale of a request.
type Resolver struct {
	fallback Locale
	locales  []Locale
	matcher  language.Matcher
}

// NewResolver creates a Resolver. fallback is used when nothing in the request
// names a supported language; an unsupported fallback becomes English.
func NewResolver(fallback Locale) *Resolver {
	if !fallback.IsValid() {
		fallback = English
	}

	// The matcher returns its first tag when nothing matches, so the
	// fallback goes first.
	locales := []Locale{fallback}
	for _, l := range Supported {
		if l != fallback {
			locales = append(locales, l)
		}
	}
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag()
	}

	return &Resolver{
		fallback: fallback,
		locales:  locales,
		matcher:  language.NewMatcher(tags),
	}
}

// Fallback returns the locale used when the request expresses no preference.
func (r *Resolver) Fallback() Locale { return r.fallback }

// Resolve returns the locale for req. Precedence: ?lang, the lang cookie,
// Accept-Language, then the fallback. The second result reports whether the
// locale came from an explicit ?lang parameter.
func (r *Resolver) Resolve(req *http.Request) (Locale, bool) {
	if l, ok := Parse(req.URL.Query().Get("lang")); ok {
		return l, true
	}

	if c, err := req.Cookie(CookieName); err == nil {
		if l, ok := Parse(c.Value); ok {
			return l, false
		}
	}

	if header := req.Header.Get("Accept-Language"); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			_, idx, conf := r.matcher.Match(tags...)
			if conf != language.No {
				return r.locales[idx], false
			}
		}
	}

	return r.fallback, false
}

// SetCookie persists l as the explicit language choice.
func SetCookie(w http.ResponseWriter, l Locale, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type ctxKey struct{}

// WithLocale stores the locale in the context.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the locale stored in ctx, or English.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(ctxKey{}).(Locale); ok {
		return l
	}
	return English
}

// Middleware resolves the locale of every request, stores it in the context
// and persists an explicit ?lang choice in the cookie.
func Middleware(r *Resolver, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			l, explicit := r.Resolve(req)
			if explicit {
				SetCookie(w, l, secureCookies)
			}
			next.ServeHTTP(w, req.WithContext(WithLocale(req.Context(), l)))
		})
	}
}
