// Package admin implements the administrator statistics and role management.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

// statsRepo defines the aggregate reads needed by the admin service.
type statsRepo interface {
	Analytics(ctx context.Context) (*domain.AdminStats, error)
	TopUsers(ctx context.Context, limit int) ([]domain.UserStat, error)
}

// profileRepo defines the profile operations needed by the admin service.
type profileRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	SetRoleByUsername(ctx context.Context, username string, role domain.Role) (*domain.Profile, error)
}

// Overview is everything the admin view shows.
type Overview struct {
	Stats    domain.AdminStats
	TopUsers []domain.UserStat
	Profiles []domain.Profile
}

// Service implements admin operations.
type Service struct {
	log      *slog.Logger
	stats    statsRepo
	profiles profileRepo
}

// NewService creates a new admin service.
func NewService(logger *slog.Logger, stats statsRepo, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		stats:    stats,
		profiles: profiles,
	}
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// Overview loads stats, the top users and all profiles concurrently.
// Any failing read fails the whole overview.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.overview(ctx)
}

func (s *Service) overview(ctx context.Context) (*Overview, error) {
	var (
		out      Overview
		stats    *domain.AdminStats
		top      []domain.UserStat
		profiles []domain.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.stats.Analytics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = s.stats.TopUsers(gctx, domain.TopUsersLimit)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = s.profiles.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin.Overview: %w", err)
	}

	out.Stats = *stats
	out.TopUsers = top
	out.Profiles = profiles
	return &out, nil
}

// Stats returns the aggregate counters.
func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := s.stats.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: %w", err)
	}
	return stats, nil
}

// TopUsers returns the usernames with the most received messages.
func (s *Service) TopUsers(ctx context.Context) ([]domain.UserStat, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	top, err := s.stats.TopUsers(ctx, domain.TopUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("admin.TopUsers: %w", err)
	}
	return top, nil
}

// Users returns every profile, newest first.
func (s *Service) Users(ctx context.Context) ([]domain.Profile, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	list, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Users: %w", err)
	}
	return list, nil
}

// Promote grants the admin role to username and returns the refreshed overview.
func (s *Service) Promote(ctx context.Context, username string) (*Overview, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if _, err := s.SetAdmin(ctx, username); err != nil {
		return nil, err
	}
	return s.overview(ctx)
}

// SetAdmin grants the admin role without checking the caller. It backs the
// promote command and Promote. Promoting an admin is a no-op.
func (s *Service) SetAdmin(ctx context.Context, username string) (*domain.Profile, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	p, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("admin.SetAdmin: %w", err)
	}
	if p.IsAdmin() {
		return p, nil
	}

	p, err = s.profiles.SetRoleByUsername(ctx, username, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("admin.SetAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("username", username),
		slog.String("user_id", p.UserID.String()))

	return p, nil
}
