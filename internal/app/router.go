package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"drivelog/internal/config"
	"drivelog/internal/handler"
	"drivelog/internal/middleware"
	internalRedis "drivelog/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	TripHandler    *handler.TripHandler
	ExpenseHandler *handler.ExpenseHandler
	ProfileHandler *handler.ProfileHandler
	ReportHandler  *handler.ReportHandler
	HealthHandler  *handler.HealthHandler

	// IdempotencyCache enables POST replay when non-nil.
	IdempotencyCache internalRedis.ResponseCache
	NewRelicApp      *newrelic.Application
	Logger           *logrus.Logger
	CORS             config.CORSConfig
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(cors.New(corsConfig(deps.CORS)))

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.IdempotencyCache != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.IdempotencyCache))
	}

	// Liveness and store health.
	router.GET("/", deps.HealthHandler.Root)
	router.GET("/health", deps.HealthHandler.Health)

	// Trip routes.
	router.POST("/trips", deps.TripHandler.Create)
	router.GET("/trips", deps.TripHandler.List)
	router.GET("/trips/export", deps.ReportHandler.Export)

	// Expense routes.
	router.POST("/expenses", deps.ExpenseHandler.Create)
	router.GET("/expenses", deps.ExpenseHandler.List)

	// Profile routes.
	router.GET("/profile", deps.ProfileHandler.Get)
	router.POST("/profile", deps.ProfileHandler.Update)

	router.GET("/summary", deps.ReportHandler.Summary)

	return router
}

// corsConfig allows every origin unless an allowlist is configured.
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	c.AllowHeaders = append(c.AllowHeaders, "Idempotency-Key", "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	return c
}
