package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReferenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/notes", Notes)
	router.GET("/scales", Scales)
	router.GET("/tunings", Tunings)
	router.GET("/view-options", ViewOptions)
	router.GET("/label-modes", LabelModes)
	router.GET("/health", NewHealthHandler("file").HealthCheck)
	router.GET("/metrics", NewMetricsHandler("test", services.NewFretboardService(12, 2)).GetMetrics)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string, out interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestReferenceEndpoints(t *testing.T) {
	router := setupReferenceRouter()

	var notes struct {
		Notes []string `json:"notes"`
	}
	getJSON(t, router, "/notes", &notes)
	assert.Len(t, notes.Notes, 12)
	assert.Equal(t, "C", notes.Notes[0])

	var scales struct {
		Scales  []theory.Formula `json:"scales"`
		Default string           `json:"default"`
	}
	getJSON(t, router, "/scales", &scales)
	assert.Equal(t, theory.ChromaticScaleName, scales.Default)
	assert.Equal(t, scales.Default, scales.Scales[0].Name)

	var tunings struct {
		Tunings []struct {
			Name   string `json:"name"`
			Tuning string `json:"tuning"`
		} `json:"tunings"`
	}
	getJSON(t, router, "/tunings", &tunings)
	assert.NotEmpty(t, tunings.Tunings)

	var views struct {
		ViewOptions []string `json:"view_options"`
		Default     string   `json:"default"`
	}
	getJSON(t, router, "/view-options", &views)
	assert.Equal(t, models.ViewOptions, views.ViewOptions)
	assert.Equal(t, models.ViewTwentyFourFrets, views.Default)

	var labels struct {
		LabelModes []string `json:"label_modes"`
		Default    string   `json:"default"`
	}
	getJSON(t, router, "/label-modes", &labels)
	assert.Equal(t, models.LabelModes, labels.LabelModes)
	assert.Equal(t, models.LabelNotes, labels.Default)
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupReferenceRouter()

	var health map[string]interface{}
	getJSON(t, router, "/health", &health)
	assert.Equal(t, "healthy", health["status"])

	var metrics MetricsResponse
	getJSON(t, router, "/metrics", &metrics)
	assert.Equal(t, "test", metrics.Version)
	assert.Contains(t, metrics.API, "fretboards")
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1.50s", formatUptime(1500*1e6))
	assert.Equal(t, "2m3.00s", formatUptime(123*1e9))
	assert.Equal(t, "1h1m1.00s", formatUptime(3661*1e9))
}
