package api

import (
	"github.com/Conceptual-Machines/fretboard-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/fretboard-api/internal/api/middleware"
	"github.com/Conceptual-Machines/fretboard-api/internal/config"
	"github.com/Conceptual-Machines/fretboard-api/internal/metrics"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	webhandlers "github.com/Conceptual-Machines/fretboard-api/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

// Deps are the long-lived components the routes are served from
type Deps struct {
	Settings      *services.SettingsService
	Fretboards    *services.FretboardService
	SentryMetrics *metrics.SentryMetrics
	CloudWatch    *metrics.Client // nil outside production
	StoreKind     string
}

func SetupRouter(cfg *config.Config, deps Deps, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.SentryMetrics, deps.CloudWatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.StoreKind)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, deps.Fretboards)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Owner scoping: behind the gateway the X-User-ID header picks the settings,
	// otherwise every request shares the anonymous settings
	authMiddleware := apimiddleware.NoAuth()
	if cfg.IsGatewayMode() {
		authMiddleware = apimiddleware.GatewayAuth()
	}

	// Web pages
	webHandler := webhandlers.NewWebHandler(deps.Settings, deps.Fretboards)
	router.GET("/", authMiddleware, webHandler.Home)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware)
	{
		// Reference data
		v1.GET("/notes", handlers.Notes)
		v1.GET("/scales", handlers.Scales)
		v1.GET("/tunings", handlers.Tunings)
		v1.GET("/view-options", handlers.ViewOptions)
		v1.GET("/label-modes", handlers.LabelModes)

		fretboardHandler := handlers.NewFretboardHandler(deps.Settings, deps.Fretboards)
		v1.POST("/fretboards/render", fretboardHandler.Render) // Ad-hoc render, nothing is saved

		fretboards := v1.Group("/fretboards")
		{
			fretboards.GET("", fretboardHandler.List)
			fretboards.POST("", fretboardHandler.Create)
			fretboards.PATCH("/:title", fretboardHandler.Update)
			fretboards.PUT("/:title/title", fretboardHandler.Rename)
			fretboards.DELETE("/:title", fretboardHandler.Delete)
			fretboards.GET("/:title/view", fretboardHandler.View)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("/export", fretboardHandler.Export)
			settings.POST("/import", fretboardHandler.Import)
		}
	}

	return router
}
