package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/fretboard-api/internal/api/middleware"
	"github.com/Conceptual-Machines/fretboard-api/internal/logger"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/Conceptual-Machines/fretboard-api/internal/web/templates"
	"github.com/gin-gonic/gin"
)

type WebHandler struct {
	settings   *services.SettingsService
	fretboards *services.FretboardService
}

func NewWebHandler(settings *services.SettingsService, fretboards *services.FretboardService) *WebHandler {
	return &WebHandler{
		settings:   settings,
		fretboards: fretboards,
	}
}

// Home renders every expanded fretboard of the current owner
func (h *WebHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	owner := middleware.GetOwner(c)

	saved, err := h.settings.List(ctx, owner)
	if err != nil {
		logger.Error("Failed to load fretboards", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load fretboards"})
		return
	}

	views := make([]*services.FretboardView, 0, len(saved))
	for _, settings := range saved {
		if !settings.Expanded {
			continue
		}
		view, err := h.fretboards.RenderSettings(ctx, settings, nil, "")
		if err != nil {
			// A stored row that no longer renders is skipped rather than failing the page
			logger.Warn("Skipping fretboard", logger.WithContext(c).With(logger.Fields{
				"title": settings.Title,
				"error": err.Error(),
			}))
			continue
		}
		views = append(views, view)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	component := templates.FretboardsPage(owner, views)
	if err := component.Render(ctx, c.Writer); err != nil {
		logger.Error("Failed to render template", err, logger.WithContext(c))
	}
}
