package bootstrap

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/uniadmin/internal/app/controllers"
	appRepos "github.com/yigit/uniadmin/internal/app/repositories"
	appRoutes "github.com/yigit/uniadmin/internal/app/routes"
	appServices "github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/config"
	"github.com/yigit/uniadmin/internal/db"
	appMiddleware "github.com/yigit/uniadmin/internal/middleware"
	"github.com/yigit/uniadmin/internal/pkg/logger"
)

// DefaultConfigPath is where the configuration file is looked up
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Connector   *db.Connector
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase prepares the connector and checks that the database answers.
// No connection is kept open afterwards.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Connector, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Preparing database connector...")
	connector, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to prepare database connector")
		return nil, err
	}

	if err := connector.Ping(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Failed to reach database")
		_ = connector.Close()
		return nil, err
	}
	lgr.Info().Msg("Database is reachable.")

	return connector, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, connector *db.Connector, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Connector: connector,
		Logger:    lgr,
	}

	deps.Repos = appRepos.NewRepositories(connector.Placeholder())
	deps.Services = appServices.NewServices(connector, deps.Repos, cfg.Enrollment.Semester)

	deps.Controllers = &appRoutes.Controllers{
		Health:     appControllers.NewHealthController(connector),
		Lookup:     appControllers.NewLookupController(deps.Services.LookupService, deps.Services.DashboardService),
		Student:    appControllers.NewStudentController(deps.Services.StudentService, deps.Services.EnrollmentService),
		Course:     appControllers.NewCourseController(deps.Services.CourseService),
		Enrollment: appControllers.NewEnrollmentController(deps.Services.EnrollmentService),
		SQL:        appControllers.NewSQLController(deps.Services.Dispatcher),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.Component("http")))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// CORSHandler wraps the router so browser clients on the configured origins
// can call the API.
func CORSHandler(cfg *config.Config, handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", appMiddleware.RequestIDHeader},
		ExposedHeaders: []string{appMiddleware.RequestIDHeader},
	}).Handler(handler)
}
