package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sanabel-org/adahi-api/docs"
	"github.com/sanabel-org/adahi-api/internal/api/handler"
	"github.com/sanabel-org/adahi-api/internal/api/middleware"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
	"github.com/sanabel-org/adahi-api/internal/core/service"
	mongodb "github.com/sanabel-org/adahi-api/internal/infrastructure/db/mongo"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/realtime"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	hub *realtime.Hub,
	changes ports.ChangeNotifier,
	notifier ports.DonorNotifier,
	jwtSecret string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adahi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	eventRepo := mongodb.NewSlaughterEventRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	submissionService := service.NewSubmissionService(submissionRepo, changes, log)
	slaughterService := service.NewSlaughterService(submissionRepo, eventRepo, notifier, changes, log)

	authHandler := handler.NewAuthHandler(authService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	slaughterHandler := handler.NewSlaughterHandler(submissionService, slaughterService)
	watchHandler := handler.NewWatchHandler(hub, log)

	authMW := middleware.Auth(jwtSecret)
	adminMW := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMW)
	v1.GET("/me", authHandler.Me)
	v1.POST("/submissions", submissionHandler.Create)
	v1.GET("/submissions", submissionHandler.List)
	v1.GET("/submissions/watch", watchHandler.Watch)

	// --- Admin routes ---
	v1.PATCH("/submissions/:id", submissionHandler.Update, adminMW)
	v1.PATCH("/submissions/:id/status", submissionHandler.SetStatus, adminMW)
	v1.DELETE("/submissions/:id", submissionHandler.Delete, adminMW)

	slaughter := v1.Group("/slaughter", adminMW)
	slaughter.GET("", slaughterHandler.List)
	slaughter.POST("/:id/transition", slaughterHandler.Transition)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
