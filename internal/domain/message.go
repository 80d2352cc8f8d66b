package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 500

// MessageInvalidText is the field error for text Postgres cannot store.
const MessageInvalidText = "contains invalid characters"

// Message is a single anonymous note addressed to a username.
// Messages are immutable once stored.
type Message struct {
	ID        uuid.UUID
	Username  string
	Message   string
	CreatedAt time.Time
}

// NormalizeMessage trims surrounding whitespace from message text.
func NormalizeMessage(text string) string {
	return strings.TrimSpace(text)
}

// ValidateMessage checks already normalized message text and returns the
// field errors it violates.
func ValidateMessage(text string) []FieldError {
	var errs []FieldError
	if text == "" {
		errs = append(errs, FieldError{Field: "message", Message: "required"})
	}
	// Postgres text rejects both with SQLSTATE 22021.
	if !utf8.ValidString(text) || strings.IndexByte(text, 0) >= 0 {
		errs = append(errs, FieldError{Field: "message", Message: MessageInvalidText})
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		errs = append(errs, FieldError{Field: "message", Message: "must be at most 500 characters"})
	}
	return errs
}
