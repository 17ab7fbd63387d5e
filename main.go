package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/fretboard-api/internal/api"
	"github.com/Conceptual-Machines/fretboard-api/internal/config"
	"github.com/Conceptual-Machines/fretboard-api/internal/database"
	"github.com/Conceptual-Machines/fretboard-api/internal/metrics"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"

	storeKindPostgres = "postgres"
	storeKindFile     = "file"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "fretboard-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("Sentry not configured (SENTRY_DSN not set)")
	}

	store, storeKind := openSettingsStore(cfg)

	settingsService, err := services.NewSettingsService(store, services.LogSink{})
	if err != nil {
		log.Fatal("Failed to create settings service:", err)
	}

	sentryMetrics := metrics.NewSentryMetrics()
	cloudwatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		// Metrics are best effort; the API runs without CloudWatch
		log.Printf("CloudWatch metrics disabled: %v", err)
		cloudwatch = nil
	}

	recorders := []metrics.RenderRecorder{sentryMetrics}
	if cloudwatch.Enabled() {
		recorders = append(recorders, cloudwatch)
	}
	fretboardService := services.NewFretboardService(cfg.DefaultFretCount, cfg.FretboardCacheSize, recorders...)

	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(cfg, api.Deps{
		Settings:      settingsService,
		Fretboards:    fretboardService,
		SentryMetrics: sentryMetrics,
		CloudWatch:    cloudwatch,
		StoreKind:     storeKind,
	}, GetVersion())

	log.Printf("Starting server on port %s (settings store: %s)", cfg.Port, storeKind)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

// openSettingsStore uses Postgres when DATABASE_URL is set and the YAML file otherwise
func openSettingsStore(cfg *config.Config) (services.SettingsStore, string) {
	if !cfg.UsesDatabase() {
		return services.NewFileSettingsStore(cfg.SettingsFile), storeKindFile
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to run migrations:", err)
	}

	return services.NewGormSettingsStore(db), storeKindPostgres
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
