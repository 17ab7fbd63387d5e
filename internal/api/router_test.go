package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/fretboard-api/internal/config"
	"github.com/Conceptual-Machines/fretboard-api/internal/metrics"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T, authMode string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewFileSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
	settings, err := services.NewSettingsService(store)
	require.NoError(t, err)

	cfg := &config.Config{Environment: "test", AuthMode: authMode, DefaultFretCount: 12}
	return SetupRouter(cfg, Deps{
		Settings:      settings,
		Fretboards:    services.NewFretboardService(cfg.DefaultFretCount, 8),
		SentryMetrics: metrics.NewSentryMetrics(),
		StoreKind:     "file",
	}, "test")
}

func TestSetupRouter_Routes(t *testing.T) {
	router := setupTestRouter(t, "none")

	for _, path := range []string{
		"/health",
		"/api/metrics",
		"/api/v1/notes",
		"/api/v1/scales",
		"/api/v1/tunings",
		"/api/v1/view-options",
		"/api/v1/label-modes",
		"/api/v1/fretboards",
		"/api/v1/fretboards/Standard%20E/view",
		"/api/v1/settings/export",
		"/",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"tuning":"E4,B3,G3,D3,A2,E2","root_note":"G","scale":"Major Scale"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fretboards/render", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSetupRouter_GatewayMode(t *testing.T) {
	router := setupTestRouter(t, "gateway")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/fretboards", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Health stays public
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
