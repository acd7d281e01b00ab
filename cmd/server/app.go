package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/phrazzld/flashcards-api/internal/api"
	apiMiddleware "github.com/phrazzld/flashcards-api/internal/api/middleware"
	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/phrazzld/flashcards-api/internal/platform/redis"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/service/auth"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *goredis.Client

	jwtService      auth.JWTService
	userService     service.UserService
	setService      service.CardSetService
	cardService     service.CardService
	learningService learning.Service
	limiter         apiMiddleware.Limiter
}

// newApplication creates the stores, services and rate limiter on top of an
// established database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	userStore := postgres.NewPostgresUserStore(db, logger)
	setStore := postgres.NewPostgresCardSetStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)
	questionStore := postgres.NewPostgresQuestionStore(db, logger)

	app.userService, err = service.NewUserService(userStore, auth.NewBcryptHasher(cfg.Auth.BCryptCost), db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.setService, err = service.NewCardSetService(setStore, cardStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card set service: %w", err)
	}

	app.cardService, err = service.NewCardService(setStore, cardStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	builder := learning.NewBuilder(cfg.Learning.OptionCount, nil)
	app.learningService = learning.NewService(
		learning.NewSetRepositoryAdapter(setStore),
		learning.NewCardRepositoryAdapter(cardStore),
		learning.NewQuestionRepositoryAdapter(questionStore),
		builder,
		db,
		logger,
	)
	logger.Info("question builder initialized", slog.Int("option_count", builder.OptionCount()))

	if err := app.setupLimiter(ctx); err != nil {
		return nil, err
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// setupLimiter selects the Redis-backed limiter when a Redis URL is
// configured and the in-process one otherwise.
func (app *application) setupLimiter(ctx context.Context) error {
	rl := app.config.RateLimit
	if !rl.Enabled {
		return nil
	}

	if rl.RedisURL == "" {
		app.limiter = apiMiddleware.NewMemoryLimiter(rl.Requests, rl.Window)
		app.logger.Info("in-memory rate limiter enabled",
			slog.Int("requests", rl.Requests),
			slog.Duration("window", rl.Window))
		return nil
	}

	client, err := redis.NewClient(ctx, rl.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect rate limiter to Redis: %w", err)
	}
	app.redis = client
	app.limiter = redis.NewFixedWindowLimiter(client, rl.Requests, rl.Window)
	app.logger.Info("Redis rate limiter enabled",
		slog.Int("requests", rl.Requests),
		slog.Duration("window", rl.Window))
	return nil
}

// handlers builds the HTTP layer from the application's services.
func (app *application) handlers() routerDeps {
	return routerDeps{
		logger:   app.logger,
		auth:     apiMiddleware.NewAuthMiddleware(app.jwtService),
		limiter:  app.limiter,
		health:   app.healthCheck,
		authH:    api.NewAuthHandler(app.userService, app.jwtService, time.Duration(app.config.Auth.TokenLifetimeMinutes)*time.Minute, app.logger),
		users:    api.NewUserHandler(app.userService, app.logger),
		sets:     api.NewSetHandler(app.setService, app.logger),
		cards:    api.NewCardHandler(app.cardService, app.logger),
		learning: api.NewLearningHandler(app.learningService, app.logger),
	}
}

// healthCheck reports whether the database answers a ping.
func (app *application) healthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return app.db.PingContext(ctx)
}

// Run serves HTTP until the process is signalled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(app.handlers())

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing Redis client", slog.String("error", err.Error()))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
