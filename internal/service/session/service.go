// Package session resolves the caller's identity and profile from a token
// pair and broadcasts sign-in and sign-out events inside the process.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/auth"
	"github.com/heartmarshall/positive-vibes/internal/domain"
	authsvc "github.com/heartmarshall/positive-vibes/internal/service/auth"
)

// authService defines the auth operations the accessor delegates to.
type authService interface {
	SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error)
	SignUp(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error)
}

// profileRepo defines the profile lookup needed by the accessor.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// Session is an authenticated token pair.
type Session struct {
	UserID       uuid.UUID
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // zero when the pair was supplied by the client
}

// State is what the current request knows about its caller.
// Profile is nil when signed out or when the identity has no profile yet.
type State struct {
	Session *Session
	Profile *domain.Profile
	// Rotated is set when Load refreshed the pair; the caller must persist it.
	Rotated bool
}

// SignedIn reports whether the state carries a session.
func (s State) SignedIn() bool { return s.Session != nil }

// HasProfile reports whether the signed-in identity has a profile.
func (s State) HasProfile() bool { return s.Session != nil && s.Profile != nil }

// IsAdmin reports whether the caller's profile has the admin role.
func (s State) IsAdmin() bool { return s.HasProfile() && s.Profile.IsAdmin() }

// EventKind distinguishes session events.
type EventKind int

const (
	SignedIn EventKind = iota + 1
	SignedOut
)

// Event is delivered to subscribers on sign-in and sign-out.
type Event struct {
	Kind   EventKind
	UserID uuid.UUID
}

// Accessor implements the session/profile operations.
type Accessor struct {
	log      *slog.Logger
	auth     authService
	profiles profileRepo

	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(Event)
}

// NewAccessor creates a session accessor.
func NewAccessor(logger *slog.Logger, auth authService, profiles profileRepo) *Accessor {
	return &Accessor{
		log:       logger.With("service", "session"),
		auth:      auth,
		profiles:  profiles,
		listeners: make(map[int]func(Event)),
	}
}

// Load resolves the state for a token pair. An expired access token is
// rotated when a refresh token is present. Invalid or revoked tokens yield
// a signed-out state, not an error.
func (a *Accessor) Load(ctx context.Context, accessToken, refreshToken string) (State, error) {
	if accessToken == "" && refreshToken == "" {
		return State{}, nil
	}

	if accessToken != "" {
		userID, role, err := a.auth.ValidateToken(ctx, accessToken)
		switch {
		case err == nil:
			sess := &Session{UserID: userID, Role: role, AccessToken: accessToken, RefreshToken: refreshToken}
			return State{Session: sess, Profile: a.loadProfile(ctx, userID)}, nil
		case !errors.Is(err, auth.ErrTokenExpired):
			return State{}, nil
		}
	}

	if refreshToken == "" {
		return State{}, nil
	}

	result, err := a.auth.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("session.Load refresh: %w", err)
	}

	st := stateFromResult(result)
	st.Rotated = true
	return st, nil
}

// loadProfile never fails the state; lookup errors are logged.
func (a *Accessor) loadProfile(ctx context.Context, userID uuid.UUID) *domain.Profile {
	p, err := a.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.log.WarnContext(ctx, "profile lookup failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return nil
	}
	return p
}

// SignIn authenticates with email and password.
func (a *Accessor) SignIn(ctx context.Context, email, password string) (State, error) {
	result, err := a.auth.SignIn(ctx, authsvc.SignInInput{Email: email, Password: password})
	if err != nil {
		return State{}, err
	}

	a.emit(Event{Kind: SignedIn, UserID: result.UserID})
	return stateFromResult(result), nil
}

// SignUp registers a new identity with its profile and signs it in.
func (a *Accessor) SignUp(ctx context.Context, email, password, username string) (State, error) {
	result, err := a.auth.SignUp(ctx, authsvc.SignUpInput{Email: email, Password: password, Username: username})
	if err != nil {
		return State{}, err
	}

	a.emit(Event{Kind: SignedIn, UserID: result.UserID})
	return stateFromResult(result), nil
}

// CreateProfile claims a username for a signed-in identity without a profile.
func (a *Accessor) CreateProfile(ctx context.Context, st State, username string) (State, error) {
	if !st.SignedIn() {
		return st, domain.ErrUnauthorized
	}

	p, err := a.auth.CreateProfile(ctx, st.Session.UserID, username)
	if err != nil {
		return st, err
	}

	st.Profile = p
	return st, nil
}

// SignOut revokes every refresh token of the session's identity and notifies
// subscribers. The returned state is signed out.
func (a *Accessor) SignOut(ctx context.Context, sess *Session) (State, error) {
	if sess == nil {
		return State{}, nil
	}

	if err := a.auth.SignOut(ctx, sess.UserID); err != nil {
		return State{}, err
	}

	a.emit(Event{Kind: SignedOut, UserID: sess.UserID})
	return State{}, nil
}

// Subscribe registers fn for session events. Events are delivered
// synchronously on the goroutine that caused them.
func (a *Accessor) Subscribe(fn func(Event)) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

func (a *Accessor) emit(ev Event) {
	a.mu.RLock()
	fns := make([]func(Event), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func stateFromResult(r *authsvc.AuthResult) State {
	role := domain.RoleMember.String()
	if r.Profile != nil {
		role = r.Profile.Role.String()
	}
	return State{
		Session: &Session{
			UserID:       r.UserID,
			Role:         role,
			AccessToken:  r.AccessToken,
			RefreshToken: r.RefreshToken,
			ExpiresAt:    r.ExpiresAt,
		},
		Profile: r.Profile,
	}
}
