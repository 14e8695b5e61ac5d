package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jwhitfield/ember-api/internal/config"
	"github.com/jwhitfield/ember-api/internal/domain/risk"
	"github.com/jwhitfield/ember-api/internal/platform/postgres"
	"github.com/jwhitfield/ember-api/internal/service"
	"github.com/jwhitfield/ember-api/internal/service/auth"
	"github.com/jwhitfield/ember-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	answerStore     store.AnswerStore
	signalStore     store.SignalStore
	assessmentStore store.AssessmentStore

	// Service interfaces
	jwtService        auth.JWTService
	passwordVerifier  auth.PasswordVerifier
	riskService       risk.Service
	assessmentService service.AssessmentService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logger, and database connection must be
// established before calling this.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
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
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, bcrypt.DefaultCost, logger)
	app.answerStore = postgres.NewPostgresAnswerStore(db, logger)
	app.signalStore = postgres.NewPostgresSignalStore(db, logger)
	app.assessmentStore = postgres.NewPostgresAssessmentStore(db, logger)

	// Risk engine with the built-in question pool and calibrated defaults.
	// A degenerate pool configuration fails startup here rather than at
	// first request.
	app.riskService, err = risk.NewDefaultService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create risk service: %w", err)
	}

	app.assessmentService, err = service.NewAssessmentService(
		db,
		app.answerStore,
		app.signalStore,
		app.assessmentStore,
		app.riskService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
