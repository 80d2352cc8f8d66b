// Package dashboard implements the owner's private view of received messages.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/i18n"
	"github.com/heartmarshall/positive-vibes/internal/realtime"
	"github.com/heartmarshall/positive-vibes/internal/share"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// messageRepo defines the message reads needed by the dashboard.
type messageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Message, error)
}

// profileRepo resolves the signed-in owner.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// subscriber opens live feeds.
type subscriber interface {
	Subscribe(ctx context.Context, username string) (realtime.Subscription, error)
}

// Service implements dashboard operations.
type Service struct {
	log      *slog.Logger
	messages messageRepo
	profiles profileRepo
	broker   subscriber
	baseURL  string
}

// NewService creates a dashboard service. baseURL is the public origin used
// in personal links.
func NewService(logger *slog.Logger, messages messageRepo, profiles profileRepo, broker subscriber, baseURL string) *Service {
	return &Service{
		log:      logger.With("service", "dashboard"),
		messages: messages,
		profiles: profiles,
		broker:   broker,
		baseURL:  baseURL,
	}
}

// Owner returns the profile of the authenticated caller.
// Callers without a profile have no dashboard and get ErrForbidden.
func (s *Service) Owner(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("dashboard.Owner: %w", err)
	}
	return p, nil
}

// List returns the stored messages of username, newest first.
func (s *Service) List(ctx context.Context, username string) ([]domain.Message, error) {
	list, err := s.messages.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("dashboard.List: %w", err)
	}
	return list, nil
}

// Open subscribes to live messages for username and then loads the stored
// ones. Subscribing first means nothing inserted during the load is lost;
// duplicates are dropped by Feed.Prepend. The caller owns the subscription.
func (s *Service) Open(ctx context.Context, username string) (*Feed, realtime.Subscription, error) {
	sub, err := s.broker.Subscribe(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("dashboard.Open subscribe: %w", err)
	}

	list, err := s.messages.ListByUsername(ctx, username)
	if err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("dashboard.Open load: %w", err)
	}

	return NewFeed(list), sub, nil
}

// Share builds the share plan for one of the owner's messages.
func (s *Service) Share(ctx context.Context, owner string, messageID uuid.UUID, platform share.Platform, locale i18n.Locale) (share.Plan, error) {
	if !platform.IsValid() {
		return share.Plan{}, domain.NewValidationError("platform", "unsupported platform")
	}

	m, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return share.Plan{}, fmt.Errorf("dashboard.Share: %w", err)
	}
	if m.Username != owner {
		return share.Plan{}, domain.ErrForbidden
	}

	text := share.Text(i18n.Lookup(locale, "socialShare"), m.Message)
	link := share.PersonalLink(s.baseURL, owner)

	plan, err := share.Build(platform, text, link)
	if err != nil {
		return share.Plan{}, err
	}

	s.log.DebugContext(ctx, "share planned",
		slog.String("platform", platform.String()),
		slog.String("message_id", messageID.String()))

	return plan, nil
}

// PersonalLink returns the owner's public link.
func (s *Service) PersonalLink(username string) string {
	return share.PersonalLink(s.baseURL, username)
}

// Export is permanently disabled.
func (s *Service) Export(_ context.Context) error {
	return fmt.Errorf("dashboard.Export: %w", domain.ErrNotImplemented)
}
