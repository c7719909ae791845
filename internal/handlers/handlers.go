package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// respondStorageError maps a storage error onto the admin API error taxonomy.
// Used on admin write paths, where the caller should see the specific reason.
func respondStorageError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, resource+" not found", ""))
	case errors.Is(err, storage.ErrDuplicateKey):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, resource+" conflicts with an existing record", err.Error()))
	default:
		utils.LogError(err, "storage error on "+resource)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process "+resource, ""))
	}
}

// respondDeleted finishes an admin delete: 404 when nothing existed.
func respondDeleted(c *gin.Context, deleted bool, err error, resource string) {
	if err != nil {
		respondStorageError(c, err, resource)
		return
	}
	if !deleted {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, resource+" not found", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
