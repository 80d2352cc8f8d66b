package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/positive-vibes/internal/adapter/postgres"
	identityrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/identity"
	messagerepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/message"
	profilerepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/profile"
	statsrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/stats"
	tokenrepo "github.com/heartmarshall/positive-vibes/internal/adapter/postgres/token"
	"github.com/heartmarshall/positive-vibes/internal/auth"
	"github.com/heartmarshall/positive-vibes/internal/config"
	"github.com/heartmarshall/positive-vibes/internal/i18n"
	"github.com/heartmarshall/positive-vibes/internal/realtime"
	adminsvc "github.com/heartmarshall/positive-vibes/internal/service/admin"
	authsvc "github.com/heartmarshall/positive-vibes/internal/service/auth"
	"github.com/heartmarshall/positive-vibes/internal/service/dashboard"
	messagesvc "github.com/heartmarshall/positive-vibes/internal/service/message"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
	"github.com/heartmarshall/positive-vibes/internal/transport/middleware"
	"github.com/heartmarshall/positive-vibes/internal/transport/rest"
	"github.com/heartmarshall/positive-vibes/internal/web"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the realtime broker, builds the services and serves HTTP
// until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("realtime_driver", cfg.Realtime.Driver),
	)

	// 1. Database.
	pool, err := OpenDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	// 2. Realtime broker.
	broker, err := NewBroker(ctx, cfg.Realtime, logger)
	if err != nil {
		return err
	}
	defer broker.Close() //nolint:errcheck

	// 3. Handler tree.
	handler, err := NewHandler(cfg, logger, pool, broker)
	if err != nil {
		return err
	}

	return serve(ctx, cfg.Server, logger, handler)
}

// OpenDatabase connects to PostgreSQL and applies pending migrations when
// auto_migrate is enabled.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	return pool, nil
}

// NewBroker creates the realtime broker selected by cfg.Driver.
func NewBroker(ctx context.Context, cfg config.RealtimeConfig, logger *slog.Logger) (realtime.Broker, error) {
	switch cfg.Driver {
	case config.RealtimeDriverRedis:
		return realtime.NewRedisBroker(ctx, realtime.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.ChannelPrefix,
			Buffer:   cfg.SubscriberBuffer,
		}, logger)
	case config.RealtimeDriverMemory, "":
		return realtime.NewHub(logger, cfg.SubscriberBuffer), nil
	default:
		return nil, fmt.Errorf("unknown realtime driver %q", cfg.Driver)
	}
}

// NewHandler builds repositories, services and the full HTTP handler:
// probes and /api/v1 on the REST mux, /static/ assets, and the HTML views
// for every other path.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, broker realtime.Broker) (http.Handler, error) {
	// Repositories.
	identities := identityrepo.New(pool)
	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	messages := messagerepo.New(pool)
	stats := statsrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, identities, profiles, tokens, txm, jwtMgr, cfg.Auth)
	sessions := session.NewAccessor(logger, authService, profiles)
	messageService := messagesvc.NewService(logger, messages, profiles, broker)
	dashboardService := dashboard.NewService(logger, messages, profiles, broker, cfg.App.BaseURL())
	adminService := adminsvc.NewService(logger, stats, profiles)

	// REST.
	health := rest.NewHealthHandler(pool, BuildVersion())
	if p, ok := broker.(rest.Pinger); ok {
		health.WithComponent("redis", p)
	}

	mux := http.NewServeMux()
	rest.Mount(mux, rest.Handlers{
		Health:    health,
		Auth:      rest.NewAuthHandler(sessions, rest.CookieOptions{RefreshTTL: cfg.Auth.RefreshTokenTTL, Secure: cfg.Auth.SecureCookies}, logger),
		Messages:  rest.NewMessageHandler(messageService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, sessions, cfg.Realtime.HeartbeatInterval, logger),
		Admin:     rest.NewAdminHandler(adminService, logger),
	})

	// HTML.
	pages, err := web.New(logger, sessions, messageService, dashboardService, adminService, web.Options{
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
		SecureCookies: cfg.Auth.SecureCookies,
	})
	if err != nil {
		return nil, err
	}
	mux.Handle("GET /static/", web.Static())
	mux.Handle("/", pages)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
		i18n.Middleware(i18n.NewResolver(i18n.Locale(cfg.App.DefaultLocale)), cfg.Auth.SecureCookies),
	)(mux), nil
}

// serve runs the HTTP server until ctx is done, then shuts down gracefully.
// Open event streams are ended first; they never go idle on their own.
func serve(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger, handler http.Handler) error {
	streamCtx, endStreams := context.WithCancel(context.WithoutCancel(ctx))
	defer endStreams()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return streamCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	endStreams()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
