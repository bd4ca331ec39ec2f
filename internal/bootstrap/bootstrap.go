package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/app/controllers"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/app/routes"
	"github.com/ozank/collegium/internal/app/services"
	"github.com/ozank/collegium/internal/config"
	"github.com/ozank/collegium/internal/db"
	"github.com/ozank/collegium/internal/middleware"
	"github.com/ozank/collegium/internal/pkg/auth"
	"github.com/ozank/collegium/internal/pkg/logger"
	"github.com/ozank/collegium/internal/seed"
)

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *controllers.Controllers

	JWTService     *auth.JWTService
	AuthMiddleware *middleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file, when present, is folded into the environment first.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects, migrates and seeds the database.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*gorm.DB, error) {
	lgr.Info().Msg("establishing database connection")
	database, err := db.Connect(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("running database migrations")
	if err := db.Migrate(database); err != nil {
		lgr.Error().Err(err).Msg("database migration failed")
		return nil, err
	}

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("failed to create default data, proceeding anyway")
	}
	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *gorm.DB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Repos = repositories.NewRepositories(database, lgr)
	deps.Services = services.NewServices(deps.Repos, deps.JWTService, lgr)
	deps.Controllers = controllers.NewControllers(deps.Services)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	routes.SetupSwagger(router)
	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
