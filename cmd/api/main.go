package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/vgu-mess/mess-portal/internal/api/http"
	"github.com/vgu-mess/mess-portal/internal/api/http/handlers"
	"github.com/vgu-mess/mess-portal/internal/auth"
	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/menu"
	"github.com/vgu-mess/mess-portal/internal/observability"
	"github.com/vgu-mess/mess-portal/internal/persistence"
	"github.com/vgu-mess/mess-portal/internal/repository"
	"github.com/vgu-mess/mess-portal/internal/service"
	"github.com/vgu-mess/mess-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userFile := persistence.NewUserFile(cfg.Store.UsersFile, logger)
	userRepo, err := repository.NewUserRepository(userFile)
	if err != nil {
		// a present but unreadable users file halts startup rather than
		// being replaced by an empty store
		if errors.Is(err, domain.ErrStorageLoadFailure) {
			logger.Fatal("users file is corrupt", zap.String("path", userFile.Path()), zap.Error(err))
		}
		logger.Fatal("failed to load users", zap.Error(err))
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var sessionRepo repository.SessionRepository
	if redis.Enabled() {
		sessionRepo = repository.NewRedisSessionRepository(redis.Client, cfg.Redis.SessionPrefix)
	} else {
		sessionRepo = repository.NewMemorySessionRepository()
	}

	var reviewRepo repository.ReviewRepository
	if pg.Enabled() {
		reviewRepo = repository.NewReviewRepository(pg.PoolHandle())
	} else {
		reviewRepo = repository.NewMemoryReviewRepository()
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(func(event events.Event, err error) {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	})
	worker.StartNotificationWorker(dispatcher, logger, cfg.Notification)

	provider := menu.NewProvider()
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	sessionService := service.NewSessionService(service.SessionDependencies{
		SessionRepo: sessionRepo,
		Auth:        authService,
		Menu:        provider,
		Dispatcher:  dispatcher,
	})
	menuService := service.NewMenuService(provider, sessionService, dispatcher, metrics)
	reviewService := service.NewReviewService(service.ReviewDependencies{
		ReviewRepo: reviewRepo,
		Menu:       provider,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})

	sessionMiddleware := auth.NewSessionMiddleware(auth.NewTokenManager(cfg.Auth.SessionSecret), sessionService, cfg.Auth, logger)

	app := httptransport.NewApp(cfg.App.Name, cfg.App.BodyLimitBytes)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, userFile, pg, redis),
		Auth:    handlers.NewAuthHandler(authService, sessionService),
		Profile: handlers.NewProfileHandler(authService),
		Menu:    handlers.NewMenuHandler(menuService, sessionService),
		Reviews: handlers.NewReviewHandler(reviewService),
		Session: sessionMiddleware,
		Metrics: metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
