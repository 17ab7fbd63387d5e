package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/fretboard-api/internal/fretboard"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
	"github.com/gin-gonic/gin"
)

// Notes returns the 12 pitch-class names usable as a root
func Notes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notes": theory.NoteNames()})
}

// Scales returns the built-in scale formulas; the first is the default
func Scales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scales":  theory.Formulas(),
		"default": theory.DefaultFormulaName(),
	})
}

// Tunings returns the tuning presets
func Tunings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tunings": fretboard.Presets()})
}

// ViewOptions returns the fret ranges a saved fretboard can be shown with
func ViewOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view_options": models.ViewOptions,
		"default":      models.DefaultViewOption(),
	})
}

// LabelModes returns the label modes accepted by render and view requests
func LabelModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"label_modes": models.LabelModes,
		"default":     models.DefaultLabelMode(),
	})
}
