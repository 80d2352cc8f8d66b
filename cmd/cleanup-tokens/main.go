// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/adapter/postgres"
	identityrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/identity"
	profilerepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/profile"
	tokenrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/token"
	"github.com/heartmarshall/positive-vibes/internal/app"
	"github.com/heartmarshall/positive-vibes/internal/auth"
	"github.com/heartmarshall/positive-vibes/internal/config"
	authsvc "github.com/heartmarshall/positive-vibes/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		identityrepo.New(pool),
		profilerepo.New(pool),
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("deleted", deleted))
}
