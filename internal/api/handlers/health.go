package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	storeKind string
}

// NewHealthHandler reports storeKind ("postgres" or "file") in health checks
func NewHealthHandler(storeKind string) *HealthHandler {
	return &HealthHandler{storeKind: storeKind}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"settings_store": gin.H{
			"kind": h.storeKind,
		},
	})
}
