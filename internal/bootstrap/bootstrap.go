// Package bootstrap wires configuration, the database, repositories,
// services, controllers and the HTTP server together.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/shs-edu/campus-portal/internal/app/controllers"
	appMigrations "github.com/shs-edu/campus-portal/internal/app/migrations"
	appRepos "github.com/shs-edu/campus-portal/internal/app/repositories"
	appRoutes "github.com/shs-edu/campus-portal/internal/app/routes"
	appServices "github.com/shs-edu/campus-portal/internal/app/services"
	"github.com/shs-edu/campus-portal/internal/config"
	"github.com/shs-edu/campus-portal/internal/db"
	appMiddleware "github.com/shs-edu/campus-portal/internal/middleware"
	pkgAuth "github.com/shs-edu/campus-portal/internal/pkg/auth"
	"github.com/shs-edu/campus-portal/internal/pkg/logger"
	"github.com/shs-edu/campus-portal/internal/pkg/validation"
	"github.com/shs-edu/campus-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	NoticeService      appServices.NoticeService
	MaterialService    appServices.MaterialService
	ContactService     appServices.ContactService
	AuthController     *appControllers.AuthController
	NoticeController   *appControllers.NoticeController
	MaterialController *appControllers.MaterialController
	ContactController  *appControllers.ContactController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// Server bundles everything needed to run the HTTP API
type Server struct {
	cfg      *config.Config
	database *db.PostgresDB
	router   *gin.Engine
	logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		// Seeding failure should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository)
	deps.MaterialService = appServices.NewMaterialService(deps.Repos.MaterialRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService, lgr)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService, lgr)
	deps.ContactController = appControllers.NewContactController(deps.ContactService, lgr)

	return deps
}

// SetupRouter configures the gin engine with binding rules and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NoticeController,
		deps.MaterialController,
		deps.ContactController,
		deps.AuthMiddleware,
	)

	return router, nil
}

// NewServer builds a fully wired Server.
func NewServer() (*Server, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	database, err := SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps := BuildDependencies(cfg, database, lgr)

	router, err := SetupRouter(cfg, deps, lgr)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &Server{
		cfg:      cfg,
		database: database,
		router:   router,
		logger:   lgr,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives,
// then drains in-flight requests.
func (s *Server) Run() error {
	defer s.database.Close()

	srv := &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("port", s.cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}
