package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/postgres"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	tokenIssuer = "todo-service"
)

// Signal hooks, swapped out in tests.
var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

// Application encapsulates the todo service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	userService *service.UserService
	todoService *service.TodoService
	authService *service.AuthService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Migrate applies the schema and exits without serving.
func Migrate(cfg Config) error {
	logger := newLogger(cfg)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Info("database migrations applied successfully", "driver", cfg.Database.Driver)
	return nil
}

// Handler exposes the routed handler, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("todo service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signalNotify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signalStop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "todo-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

func openStore(cfg Config) (store.Store, error) {
	switch cfg.Database.Driver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := postgres.NewStore(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, nil
	default:
		db, err := sqlite.NewStore(cfg.Database.File)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, nil
	}
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	db, err := openStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Database.Driver)
	return nil
}

func (app *Application) initServices() error {
	hasher, err := cryptox.NewHasher(app.cfg.Password.Hash, app.cfg.Password.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to configure password hashing: %w", err)
	}

	tokens, err := app.tokenIssuer()
	if err != nil {
		return err
	}

	app.userService = &service.UserService{Store: app.db, Hasher: hasher}
	app.todoService = &service.TodoService{Store: app.db}
	app.authService = &service.AuthService{Users: app.userService, Tokens: tokens}
	return nil
}

func (app *Application) tokenIssuer() (service.TokenIssuer, error) {
	if app.cfg.Token.Mode != TokenModeJWT {
		return service.PlaceholderIssuer{}, nil
	}

	issuer, err := service.NewJWTIssuer([]byte(app.cfg.Token.JWTSecret), tokenIssuer, app.cfg.Token.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure jwt tokens: %w", err)
	}
	app.logger.Info("issuing signed session tokens", "ttl", app.cfg.Token.JWTTTL)
	return issuer, nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.cfg.CORSOrigins, app.logger)

	router.UserService = app.userService
	router.TodoService = app.todoService
	router.AuthService = app.authService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
