package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/config"
	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// identityRepo defines the identity repository interface needed by auth service.
type identityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.Identity, error)
}

// profileRepo defines the profile repository interface needed by auth service.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, userID uuid.UUID, username string, role domain.Role) (*domain.Profile, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	identities identityRepo
	profiles   profileRepo
	tokens     tokenRepo
	tx         txManager
	jwt        jwtManager
	cfg        config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	identities identityRepo,
	profiles profileRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		identities: identities,
		profiles:   profiles,
		tokens:     tokens,
		tx:         tx,
		jwt:        jwt,
		cfg:        cfg,
	}
}

// issueTokens generates access and refresh tokens for the identity, stores
// the refresh token hash in DB, and returns an AuthResult. profile may be nil.
func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID, profile *domain.Profile) (*AuthResult, error) {
	role := domain.RoleMember
	if profile != nil {
		role = profile.Role
	}

	accessToken, err := s.jwt.GenerateAccessToken(userID, role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := time.Now()
	refreshToken := &domain.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefresh,
		ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
	}
	if _, err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresAt:    now.Add(s.cfg.AccessTokenTTL),
		Profile:      profile,
	}, nil
}
