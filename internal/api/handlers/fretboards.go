package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/fretboard-api/internal/api/middleware"
	"github.com/Conceptual-Machines/fretboard-api/internal/logger"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

type FretboardHandler struct {
	settings   *services.SettingsService
	fretboards *services.FretboardService
}

func NewFretboardHandler(settings *services.SettingsService, fretboards *services.FretboardService) *FretboardHandler {
	return &FretboardHandler{
		settings:   settings,
		fretboards: fretboards,
	}
}

type RenameRequest struct {
	Title string `json:"title" binding:"required"`
}

// Render builds a grid from an ad-hoc tuning, root and scale without saving anything
func (h *FretboardHandler) Render(c *gin.Context) {
	var req services.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FretCount != nil && *req.FretCount > maxFretCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("fret_count must be at most %d", maxFretCount)})
		return
	}

	view, err := h.fretboards.Render(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to render fretboard", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// List returns the caller's saved fretboards in display order
func (h *FretboardHandler) List(c *gin.Context) {
	fretboards, err := h.settings.List(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		respondError(c, "Failed to load fretboards", err)
		return
	}
	c.JSON(http.StatusOK, models.AppSettings{Fretboards: fretboards})
}

// Create appends a fretboard to the caller's list
func (h *FretboardHandler) Create(c *gin.Context) {
	var req models.FretboardSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.settings.Add(c.Request.Context(), middleware.GetOwner(c), req)
	if err != nil {
		respondError(c, "Failed to add fretboard", err)
		return
	}

	logger.Info("Fretboard added", logger.WithContext(c).With(logger.Fields{"title": created.Title}))
	c.JSON(http.StatusCreated, created)
}

// Update applies a partial change to a saved fretboard
func (h *FretboardHandler) Update(c *gin.Context) {
	var patch models.FretboardSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.settings.Update(c.Request.Context(), middleware.GetOwner(c), c.Param("title"), patch)
	if err != nil {
		respondError(c, "Failed to update fretboard", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Rename changes a saved fretboard's title
func (h *FretboardHandler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	renamed, err := h.settings.Rename(c.Request.Context(), middleware.GetOwner(c), c.Param("title"), req.Title)
	if err != nil {
		respondError(c, "Failed to rename fretboard", err)
		return
	}
	c.JSON(http.StatusOK, renamed)
}

// Delete removes a saved fretboard
func (h *FretboardHandler) Delete(c *gin.Context) {
	title := c.Param("title")
	if err := h.settings.Remove(c.Request.Context(), middleware.GetOwner(c), title); err != nil {
		respondError(c, "Failed to remove fretboard", err)
		return
	}

	logger.Info("Fretboard removed", logger.WithContext(c).With(logger.Fields{"title": title}))
	c.Status(http.StatusNoContent)
}

// View renders a saved fretboard over its view option's range; fret_count overrides the range
// and label_mode picks the fret labels
func (h *FretboardHandler) View(c *gin.Context) {
	fretCount, err := parseFretCount(c.Query("fret_count"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settings.Get(c.Request.Context(), middleware.GetOwner(c), c.Param("title"))
	if err != nil {
		respondError(c, "Failed to load fretboard", err)
		return
	}

	view, err := h.fretboards.RenderSettings(c.Request.Context(), settings, fretCount, c.Query("label_mode"))
	if err != nil {
		respondError(c, "Failed to render fretboard", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Export returns the caller's settings as a YAML document
func (h *FretboardHandler) Export(c *gin.Context) {
	fretboards, err := h.settings.List(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		respondError(c, "Failed to load fretboards", err)
		return
	}

	data, err := services.EncodeSettings(fretboards)
	if err != nil {
		respondError(c, "Failed to export settings", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fretboards.yaml"`)
	c.Data(http.StatusOK, yamlContentType, data)
}

// Import replaces the caller's settings with an uploaded YAML document
func (h *FretboardHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if len(data) > maxImportBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Settings document is too large"})
		return
	}

	fretboards, err := services.DecodeSettings(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	replaced, err := h.settings.Replace(c.Request.Context(), middleware.GetOwner(c), fretboards)
	if err != nil {
		respondError(c, "Failed to import settings", err)
		return
	}

	logger.Info("Settings imported", logger.WithContext(c).With(logger.Fields{"fretboards": len(replaced)}))
	c.JSON(http.StatusOK, models.AppSettings{Fretboards: replaced})
}

func parseFretCount(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > maxFretCount {
		return nil, fmt.Errorf("fret_count must be an integer between 0 and %d", maxFretCount)
	}
	return &n, nil
}
