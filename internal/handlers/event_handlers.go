package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// EventHandler serves the public event reads and the admin event CRUD.
type EventHandler struct {
	store storage.Storage
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(store storage.Storage) *EventHandler {
	return &EventHandler{store: store}
}

// GetEvents returns all events ordered by start date.
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.store.GetEvents()
	if err != nil {
		utils.LogError(err, "GetEvents: degraded to empty collection")
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event by id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.store.GetEvent(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventBySlug returns a single event by its URL slug.
func (h *EventHandler) GetEventBySlug(c *gin.Context) {
	event, err := h.store.GetEventBySlug(c.Param("slug"))
	if err != nil {
		respondStorageError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event (admin).
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !utils.IsValidSlug(event.Slug) {
		utils.RespondValidationFailed(c, "slug must be lowercase alphanumerics and hyphens")
		return
	}
	created, err := h.store.CreateEvent(event)
	if err != nil {
		respondStorageError(c, err, "Event")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEvent applies a partial update to an event (admin).
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if patch.Slug != nil && !utils.IsValidSlug(*patch.Slug) {
		utils.RespondValidationFailed(c, "slug must be lowercase alphanumerics and hyphens")
		return
	}
	updated, err := h.store.UpdateEvent(c.Param("id"), patch)
	if err != nil {
		respondStorageError(c, err, "Event")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent deletes an event (admin).
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	deleted, err := h.store.DeleteEvent(c.Param("id"))
	respondDeleted(c, deleted, err, "Event")
}
