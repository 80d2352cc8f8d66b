package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// SignIn authenticates an identity with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
// The result carries no profile when the identity has not created one yet.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find identity by email
	identity, err := s.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get identity: %w", err)
	}

	// Step 3: Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Load profile
	profile, err := s.profiles.GetByUserID(ctx, identity.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.SignIn get profile: %w", err)
		}
		profile = nil
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, identity.ID, profile)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", identity.ID.String()))

	return result, nil
}
