package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// UsernameTakenMessage is the field message reported when a username is in use.
const UsernameTakenMessage = "already taken"

// SignUp creates an identity with email + password and its member profile.
// Returns a username validation error if the username is in use and
// ErrAlreadyExists if the email is already registered.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)
	input.Username = domain.NormalizeUsername(input.Username)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Username availability
	taken, err := s.profiles.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp check username: %w", err)
	}
	if taken {
		return nil, usernameTaken()
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	// Step 4: Create identity + profile in a transaction.
	// Uniqueness is still enforced by DB constraints for concurrent sign-ups.
	var profile *domain.Profile

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		identity, err := s.identities.Create(txCtx, input.Email, string(hash))
		if err != nil {
			return fmt.Errorf("create identity: %w", err)
		}

		p, err := s.profiles.Create(txCtx, identity.ID, input.Username, domain.RoleMember)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return usernameTaken()
			}
			return fmt.Errorf("create profile: %w", err)
		}

		profile = p
		return nil
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, profile.UserID, profile)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", profile.UserID.String()),
		slog.String("username", profile.Username))

	return result, nil
}

func usernameTaken() error {
	return domain.NewValidationError("username", UsernameTakenMessage)
}
