package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/orgdeskhq/orgdesk/internal/admin/http"
	"github.com/orgdeskhq/orgdesk/internal/admin/mail"
	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/internal/admin/store/drivers/sqlite"
	"github.com/orgdeskhq/orgdesk/pkg/jwtx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the orgdesk service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier jwtx.Verifier
	mailer   mail.Mailer

	organizationService *service.OrganizationService
	memberService       *service.MemberService
	invitationService   *service.InvitationService
	usageService        *service.UsageService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "orgdesk",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	pub, err := jwtx.LoadEd25519PublicKey(cfg.AuthPublicKeyFile)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to load auth public key: %w", err)
	}
	app.verifier = jwtx.NewVerifierEdDSA(pub, cfg.Issuer)

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("orgdesk starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down orgdesk...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("orgdesk stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mailer = &mail.LogMailer{Logger: app.logger}
		app.logger.Info("smtp not configured, invite emails will be logged")
		return
	}
	app.mailer = &mail.SMTPMailer{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.memberService = &service.MemberService{Store: app.db}
	app.usageService = &service.UsageService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store:        app.db,
		Mailer:       app.mailer,
		PublicOrigin: app.cfg.PublicOrigin,
		InviteTTL:    app.cfg.InviteTTL,
	}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.OrganizationService = app.organizationService
	router.MemberService = app.memberService
	router.InvitationService = app.invitationService
	router.UsageService = app.usageService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
