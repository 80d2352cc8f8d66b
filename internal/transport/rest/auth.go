package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
	"github.com/heartmarshall/positive-vibes/internal/transport/middleware"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// sessionService defines the session operations needed by AuthHandler.
type sessionService interface {
	Load(ctx context.Context, accessToken, refreshToken string) (session.State, error)
	SignIn(ctx context.Context, email, password string) (session.State, error)
	SignUp(ctx context.Context, email, password, username string) (session.State, error)
	CreateProfile(ctx context.Context, st session.State, username string) (session.State, error)
	SignOut(ctx context.Context, sess *session.Session) (session.State, error)
}

// CookieOptions controls the session cookies written next to the JSON body.
type CookieOptions struct {
	RefreshTTL time.Duration
	Secure     bool
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc     sessionService
	cookies CookieOptions
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc sessionService, cookies CookieOptions, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies, log: logger.With("handler", "auth")}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type profileRequest struct {
	Username string `json:"username"`
}

type sessionResponse struct {
	SignedIn     bool             `json:"signedIn"`
	UserID       string           `json:"userId,omitempty"`
	Role         string           `json:"role,omitempty"`
	AccessToken  string           `json:"accessToken,omitempty"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	ExpiresAt    *time.Time       `json:"expiresAt,omitempty"`
	Profile      *profileResponse `json:"profile"`
}

type profileResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.svc.SignUp(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeSession(w, http.StatusCreated, st, true)
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeSession(w, http.StatusOK, st, true)
}

// Refresh handles POST /auth/refresh. The refresh token comes from the body
// or, for browser sessions, from the refresh cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}
	if req.RefreshToken == "" {
		_, req.RefreshToken = middleware.SessionTokens(r)
	}
	if req.RefreshToken == "" {
		handleError(h.log, w, r, domain.NewValidationError("refreshToken", "required"))
		return
	}

	st, err := h.svc.Load(r.Context(), "", req.RefreshToken)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !st.SignedIn() {
		middleware.ClearSessionCookies(w, h.cookies.Secure)
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	h.writeSession(w, http.StatusOK, st, true)
}

// SignOut handles POST /auth/signout. Every refresh token of the caller is
// revoked and open dashboard streams of the caller are closed.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	if _, err := h.svc.SignOut(r.Context(), &session.Session{UserID: userID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	middleware.ClearSessionCookies(w, h.cookies.Secure)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session handles GET /auth/session. It reports the caller's state and
// rotates an expired cookie pair.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	access, refresh := middleware.SessionTokens(r)
	if bearer := bearerToken(r); bearer != "" {
		access = bearer
	}

	st, err := h.svc.Load(r.Context(), access, refresh)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeSession(w, http.StatusOK, st, st.Rotated)
}

// CreateProfile handles POST /auth/profile for an identity without a profile.
func (h *AuthHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st := session.State{Session: &session.Session{UserID: userID, Role: ctxutil.RoleFromCtx(r.Context())}}
	st, err := h.svc.CreateProfile(r.Context(), st, req.Username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProfileResponse(st.Profile))
}

// writeSession answers with the state and, when setCookies is true, mirrors
// the token pair into the session cookies.
func (h *AuthHandler) writeSession(w http.ResponseWriter, status int, st session.State, setCookies bool) {
	if setCookies && st.SignedIn() {
		middleware.SetSessionCookies(w, st.Session.AccessToken, st.Session.RefreshToken, h.cookies.RefreshTTL, h.cookies.Secure)
	}
	writeJSON(w, status, toSessionResponse(st))
}

func toSessionResponse(st session.State) sessionResponse {
	if !st.SignedIn() {
		return sessionResponse{}
	}
	resp := sessionResponse{
		SignedIn:     true,
		UserID:       st.Session.UserID.String(),
		Role:         st.Session.Role,
		AccessToken:  st.Session.AccessToken,
		RefreshToken: st.Session.RefreshToken,
		Profile:      toProfileResponse(st.Profile),
	}
	if !st.Session.ExpiresAt.IsZero() {
		exp := st.Session.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

func toProfileResponse(p *domain.Profile) *profileResponse {
	if p == nil {
		return nil
	}
	return &profileResponse{
		UserID:    p.UserID.String(),
		Username:  p.Username,
		Role:      p.Role.String(),
		CreatedAt: p.CreatedAt,
	}
}
