package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// GameHandler serves the public game schedule reads and the admin game CRUD.
type GameHandler struct {
	store storage.Storage
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(store storage.Storage) *GameHandler {
	return &GameHandler{store: store}
}

// GetGames returns the full schedule ordered by start time.
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.store.GetGames()
	if err != nil {
		utils.LogError(err, "GetGames: degraded to empty collection")
		games = []models.Game{}
	}
	c.JSON(http.StatusOK, games)
}

// GetTodaysGames returns games starting within the current local day.
func (h *GameHandler) GetTodaysGames(c *gin.Context) {
	games, err := h.store.GetTodaysGames()
	if err != nil {
		utils.LogError(err, "GetTodaysGames: degraded to empty collection")
		games = []models.Game{}
	}
	c.JSON(http.StatusOK, games)
}

// GetUpcomingGames returns games starting from now onward.
func (h *GameHandler) GetUpcomingGames(c *gin.Context) {
	games, err := h.store.GetUpcomingGames()
	if err != nil {
		utils.LogError(err, "GetUpcomingGames: degraded to empty collection")
		games = []models.Game{}
	}
	c.JSON(http.StatusOK, games)
}

// GetGame returns a single scheduled game by id.
func (h *GameHandler) GetGame(c *gin.Context) {
	game, err := h.store.GetGame(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Game")
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame creates a scheduled game (admin).
func (h *GameHandler) CreateGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	created, err := h.store.CreateGame(game)
	if err != nil {
		respondStorageError(c, err, "Game")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateGame applies a partial update to a scheduled game (admin).
func (h *GameHandler) UpdateGame(c *gin.Context) {
	var patch models.GamePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	updated, err := h.store.UpdateGame(c.Param("id"), patch)
	if err != nil {
		respondStorageError(c, err, "Game")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGame deletes a scheduled game (admin).
func (h *GameHandler) DeleteGame(c *gin.Context) {
	deleted, err := h.store.DeleteGame(c.Param("id"))
	respondDeleted(c, deleted, err, "Game")
}
