package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kingkebab/timetrack/internal/api/handler"
	"github.com/kingkebab/timetrack/internal/api/middleware"
	"github.com/kingkebab/timetrack/internal/core/ports"
	"github.com/kingkebab/timetrack/internal/core/service"
	mongodb "github.com/kingkebab/timetrack/internal/infrastructure/db/mongo"
	redisdb "github.com/kingkebab/timetrack/internal/infrastructure/db/redis"
	"github.com/kingkebab/timetrack/internal/infrastructure/report"
)

// Config carries the router-level settings.
type Config struct {
	JWTSecret       string
	FrontendURL     string
	RateLimitMax    int64
	RateLimitWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg Config, db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000"},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("timetrack"))

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	entryRepo := mongodb.NewEntryRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	entryService := service.NewEntryService(entryRepo, notifier, log)
	reportService := service.NewReportService(entryRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	entryHandler := handler.NewEntryHandler(entryService)
	reportHandler := handler.NewReportHandler(reportService, report.NewPDFRenderer(), report.NewExcelRenderer())
	userHandler := handler.NewUserHandler(userRepo, authService)

	authenticated := middleware.Authenticated(cfg.JWTSecret, userRepo)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/create-admin", authHandler.CreateAdmin)

	// --- Time entry routes ---
	timeGroup := e.Group("/api/time", authenticated)
	timeGroup.POST("", entryHandler.Create)
	timeGroup.GET("/my-entries", entryHandler.ListMine)
	timeGroup.GET("/all", entryHandler.ListAll, adminOnly)
	timeGroup.GET("/daily/:date", entryHandler.ListDaily)
	timeGroup.GET("/weekly/:startDate", entryHandler.ListWeekly)
	timeGroup.PUT("/:id", entryHandler.Update)
	timeGroup.DELETE("/:id", entryHandler.Delete)

	// --- Report routes ---
	timeGroup.GET("/my-pdf/:month/:year", reportHandler.MyPDF)
	timeGroup.GET("/worker-pdf/:userId/:month/:year", reportHandler.WorkerPDF, adminOnly)
	timeGroup.GET("/worker-excel/:userId/:month/:year", reportHandler.WorkerExcel, adminOnly)
	timeGroup.GET("/all-workers-excel/:month/:year", reportHandler.AllWorkersExcel, adminOnly)

	// --- User management routes ---
	users := e.Group("/api/users", authenticated, adminOnly)
	users.GET("", userHandler.List)
	users.POST("/register", userHandler.RegisterWorker)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
