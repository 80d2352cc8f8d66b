package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// CreateProfile claims a username for an identity that has no profile yet.
// Returns ErrConflict if the identity already has one.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	username = domain.NormalizeUsername(username)
	if msg := domain.ValidateUsername(username); msg != "" {
		return nil, domain.NewValidationError("username", msg)
	}

	existing, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("auth.CreateProfile: %w", domain.ErrConflict)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.CreateProfile get profile: %w", err)
	}

	taken, err := s.profiles.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateProfile check username: %w", err)
	}
	if taken {
		return nil, usernameTaken()
	}

	profile, err := s.profiles.Create(ctx, userID, username, domain.RoleMember)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, usernameTaken()
		}
		return nil, fmt.Errorf("auth.CreateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.String("username", profile.Username))

	return profile, nil
}
