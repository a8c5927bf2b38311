package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"apicatalog/internal/config"
	"apicatalog/internal/handler"
	"apicatalog/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log zerolog.Logger,
	cfg *config.Config,
	apiH *handler.ApiHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks and metrics
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	apis := v1.Group("/apis")
	apis.GET("", apiH.List)
	apis.GET("/export",
		middleware.RateLimit(cfg.Export.RateLimitPerMinute, cfg.Export.RateLimitBurst),
		apiH.Export,
	)
	apis.GET("/:id", apiH.GetByID)
	apis.PUT("/:id", apiH.Update)

	return r
}
