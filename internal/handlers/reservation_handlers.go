package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// ReservationHandler serves the public booking form submission and the admin
// reservation management surface.
type ReservationHandler struct {
	store storage.Storage
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(store storage.Storage) *ReservationHandler {
	return &ReservationHandler{store: store}
}

// CreateReservation accepts a booking request from the public site. The
// server assigns the id, pending status, and creation timestamp.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.InsertReservation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	created, err := h.store.CreateReservation(req)
	if err != nil {
		respondStorageError(c, err, "Reservation")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetReservations lists all reservations, newest first (admin).
func (h *ReservationHandler) GetReservations(c *gin.Context) {
	reservations, err := h.store.GetReservations()
	if err != nil {
		respondStorageError(c, err, "Reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns a single reservation by id (admin).
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.store.GetReservation(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation updates a reservation's status or special requests
// (admin). Only the fields admins manage are patchable.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if patch.Status != nil && !models.IsValidReservationStatus(*patch.Status) {
		utils.RespondValidationFailed(c, "status must be pending, confirmed, or cancelled")
		return
	}
	updated, err := h.store.UpdateReservation(c.Param("id"), patch)
	if err != nil {
		respondStorageError(c, err, "Reservation")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReservation deletes a reservation (admin).
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	deleted, err := h.store.DeleteReservation(c.Param("id"))
	respondDeleted(c, deleted, err, "Reservation")
}
