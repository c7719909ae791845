package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// ContentHandler serves the singleton site content documents: settings,
// promotions, and the landing page. Reads always succeed with defaults when
// nothing is stored yet, so the public site never blanks out.
type ContentHandler struct {
	store storage.Storage
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(store storage.Storage) *ContentHandler {
	return &ContentHandler{store: store}
}

// GetSettings returns the site settings document.
func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.store.GetSettings()
	if err != nil {
		utils.LogError(err, "GetSettings: degraded to default settings")
		settings = models.DefaultSettings()
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the site settings document (admin).
func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	updated, err := h.store.UpdateSettings(settings)
	if err != nil {
		respondStorageError(c, err, "Settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetPromotions returns the promotions document.
func (h *ContentHandler) GetPromotions(c *gin.Context) {
	promotions, err := h.store.GetPromotionsData()
	if err != nil {
		utils.LogError(err, "GetPromotions: degraded to default promotions")
		promotions = models.DefaultPromotions()
	}
	c.JSON(http.StatusOK, promotions)
}

// UpdatePromotions replaces the promotions document (admin).
func (h *ContentHandler) UpdatePromotions(c *gin.Context) {
	var promotions models.Promotions
	if err := c.ShouldBindJSON(&promotions); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	updated, err := h.store.UpdatePromotions(promotions)
	if err != nil {
		respondStorageError(c, err, "Promotions")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetLanding returns the landing page document.
func (h *ContentHandler) GetLanding(c *gin.Context) {
	landing, err := h.store.GetLandingData()
	if err != nil {
		utils.LogError(err, "GetLanding: degraded to default landing content")
		landing = models.DefaultLandingContent()
	}
	c.JSON(http.StatusOK, landing)
}

// UpdateLanding replaces the landing page document (admin).
func (h *ContentHandler) UpdateLanding(c *gin.Context) {
	var landing models.LandingContent
	if err := c.ShouldBindJSON(&landing); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	updated, err := h.store.UpdateLanding(landing)
	if err != nil {
		respondStorageError(c, err, "Landing content")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
