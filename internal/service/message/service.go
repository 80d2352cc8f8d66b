// Package message implements anonymous message submission and owner reads.
package message

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// messageRepo defines the message persistence needed by the service.
type messageRepo interface {
	Create(ctx context.Context, username, text string) (*domain.Message, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Message, error)
}

// profileRepo resolves the caller's username.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// publisher fans stored messages out to live dashboards.
type publisher interface {
	Publish(ctx context.Context, m domain.Message) error
}

// Service implements message operations.
type Service struct {
	log       *slog.Logger
	messages  messageRepo
	profiles  profileRepo
	publisher publisher
}

// NewService creates a new message service.
func NewService(logger *slog.Logger, messages messageRepo, profiles profileRepo, pub publisher) *Service {
	return &Service{
		log:       logger.With("service", "message"),
		messages:  messages,
		profiles:  profiles,
		publisher: pub,
	}
}

// SubmitInput is an anonymous submission to a personal link.
type SubmitInput struct {
	Username string
	Message  string
}

// Validate validates already normalized input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	errs = append(errs, domain.ValidateMessage(i.Message)...)

	return domain.Validation(errs)
}

// Submit stores an anonymous message for username and publishes it to the
// recipient's live dashboards. Nothing about the sender is recorded.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Message, error) {
	input.Username = domain.NormalizeUsername(input.Username)
	input.Message = domain.NormalizeMessage(input.Message)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.messages.Create(ctx, input.Username, input.Message)
	if err != nil {
		return nil, fmt.Errorf("message.Submit: %w", err)
	}

	if err := s.publisher.Publish(ctx, *m); err != nil {
		s.log.WarnContext(ctx, "realtime publish failed",
			slog.String("username", m.Username),
			slog.String("message_id", m.ID.String()),
			slog.String("error", err.Error()))
	}

	return m, nil
}

// ListForUsername returns the messages received by username, newest first.
// Only the owner of the username or an admin may read them.
func (s *Service) ListForUsername(ctx context.Context, username string) ([]domain.Message, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	if err := s.authorizeRead(ctx, username); err != nil {
		return nil, err
	}

	list, err := s.messages.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("message.ListForUsername: %w", err)
	}
	return list, nil
}

func (s *Service) authorizeRead(ctx context.Context, username string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("message.authorize: %w", err)
	}
	if p.Username != username {
		return domain.ErrForbidden
	}
	return nil
}
