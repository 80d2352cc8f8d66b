package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// AuthResult is returned by SignUp, SignIn and Refresh.
type AuthResult struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string    // raw token, NOT hash
	ExpiresAt    time.Time // access token expiry
	Profile      *domain.Profile
}
