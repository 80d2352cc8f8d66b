package auth

import (
	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// SignUpInput holds parameters for password registration.
type SignUpInput struct {
	Email    string
	Password string
	Username string
}

// Validate validates the sign-up input. Email and username must already be normalized.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, i.Password)

	if msg := domain.ValidateUsername(i.Username); msg != "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: msg})
	}

	return domain.Validation(errs)
}

// SignInInput holds parameters for password login.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordBytes {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	return domain.Validation(errs)
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	return domain.Validation(errs)
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !domain.ValidEmail(email):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len([]rune(password)) < domain.MinPasswordLength:
		return append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(password) > maxPasswordBytes:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
