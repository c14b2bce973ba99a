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

	httpapi "github.com/rentlinkhq/rentlink/internal/rental/http"
	"github.com/rentlinkhq/rentlink/internal/rental/mailer"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/internal/rental/store/drivers/sqlite"
	"github.com/rentlinkhq/rentlink/pkg/jwtx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the rental service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	mailer mailer.Mailer

	// Services
	userService         *service.UserService
	propertyService     *service.PropertyService
	unitService         *service.UnitService
	inviteService       *service.InviteService
	paymentService      *service.PaymentService
	maintenanceService  *service.MaintenanceService
	messageService      *service.MessageService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "rental-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("rental service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Block until we receive a shutdown signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down rental service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	// Close database connection last
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("rental service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer selects the invitation email transport. MailerSend wins when
// an API key is configured, then SMTP, then the logging dev mailer.
func (app *Application) initMailer() {
	switch {
	case app.cfg.MailerSendAPIKey != "":
		app.mailer = mailer.NewMailerSend(
			app.cfg.MailerSendAPIKey,
			app.cfg.MailFromName,
			app.cfg.MailFromEmail,
			app.cfg.FrontendURL,
		)
		app.logger.Info("mailer initialized", "transport", "mailersend")
	case app.cfg.SMTPHost != "":
		app.mailer = mailer.NewSMTP(
			app.cfg.SMTPHost,
			app.cfg.SMTPPort,
			app.cfg.MailFromEmail,
			app.cfg.SMTPUser,
			app.cfg.SMTPPass,
			app.cfg.FrontendURL,
		)
		app.logger.Info("mailer initialized", "transport", "smtp", "host", app.cfg.SMTPHost)
	default:
		app.mailer = mailer.NewDev()
		app.logger.Warn("no mail transport configured, invitation emails will be logged only")
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.propertyService = &service.PropertyService{Store: app.db}
	app.unitService = &service.UnitService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:  app.db,
		Mailer: app.mailer,
	}
	app.paymentService = &service.PaymentService{Store: app.db}
	app.maintenanceService = &service.MaintenanceService{Store: app.db}
	app.messageService = &service.MessageService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	verifier := jwtx.HS256Verifier{
		Secret:   []byte(app.cfg.JWTSecret),
		Issuer:   app.cfg.JWTIssuer,
		Audience: app.cfg.JWTAudience,
	}

	router := httpapi.NewRouter(verifier, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.UserService = app.userService
	router.PropertyService = app.propertyService
	router.UnitService = app.unitService
	router.InviteService = app.inviteService
	router.PaymentService = app.paymentService
	router.MaintenanceService = app.maintenanceService
	router.MessageService = app.messageService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
