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

	"github.com/go-chi/chi/v5"

	"langtab/internal/config"
	apierrors "langtab/internal/errors"
	"langtab/internal/infrastructure"
	"langtab/internal/loader"
	custommw "langtab/internal/middleware"
	"langtab/internal/services"
	transporthttp "langtab/internal/transport/http"
	"langtab/pkg/contracts/domain"
)

// Version is the application version, overridable at build time.
var Version = "dev"

// Application represents the main application container.
type Application struct {
	Config      *config.Config
	Router      *chi.Mux
	Server      *http.Server
	DataService *services.DataService
	Logger      *slog.Logger
}

// NewApplication creates a new application instance with dependency injection.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port))

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	records, err := loadDataset(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:      cfg,
		DataService: services.NewDataService(records, logger),
		Logger:      logger,
	}
	app.setupRouter()

	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// loadDataset reads the configured dataset file. A missing file is not
// fatal: the server starts empty and records can be posted via the API.
func loadDataset(cfg *config.Config, logger *slog.Logger) ([]domain.Record, error) {
	path := cfg.Paths.DatasetFile
	if _, err := os.Stat(path); err != nil {
		logger.Warn("Dataset file not found, starting with empty dataset",
			slog.String("path", path))
		return nil, nil
	}

	records, err := loader.ParseDatasetFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	logger.Info("Dataset loaded",
		slog.String("path", path),
		slog.Int("record_count", len(records)))
	return records, nil
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	dataHandler := transporthttp.NewDataHandler(a.DataService, a.Logger, errorHandler)
	healthHandler := transporthttp.NewHealthHandler(Version)

	r.Mount("/api", dataHandler.Routes())
	r.Mount("/", healthHandler.Routes())

	a.Router = r
}

// Start starts the HTTP server without blocking.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		a.Logger.InfoContext(ctx, "HTTP server listening",
			slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	a.Start(ctx, cancel)

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
