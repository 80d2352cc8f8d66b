// Command promote grants the admin role to a profile by username.
// It is used to bootstrap the first admin.
//
// Usage:
//
//	promote --username=alice
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/adapter/postgres"
	profilerepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/profile"
	statsrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/stats"
	"github.com/heartmarshall/positive-vibes/internal/app"
	"github.com/heartmarshall/positive-vibes/internal/config"
	"github.com/heartmarshall/positive-vibes/internal/domain"
	adminsvc "github.com/heartmarshall/positive-vibes/internal/service/admin"
)

func main() {
	username := flag.String("username", "", "username of the profile to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := adminsvc.NewService(logger, statsrepo.New(pool), profilerepo.New(pool))

	profile, err := svc.SetAdmin(ctx, *username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No profile found with username %q.\n", *username)
			os.Exit(1)
		}
		logger.Error("promote failed",
			slog.String("username", *username),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", profile.Username, profile.Role)
}
