package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

// MenuHandler serves the public menu reads and the admin menu CRUD.
type MenuHandler struct {
	store storage.Storage
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store storage.Storage) *MenuHandler {
	return &MenuHandler{store: store}
}

// GetCategories returns all menu categories in display order. Public reads
// degrade to an empty collection on storage failure rather than failing the
// page render.
func (h *MenuHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.GetMenuCategories()
	if err != nil {
		utils.LogError(err, "GetCategories: degraded to empty collection")
		categories = []models.MenuCategory{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetItems returns menu items, optionally filtered by categoryId. Filtering
// happens in storage so ordering stays consistent regardless of caller.
func (h *MenuHandler) GetItems(c *gin.Context) {
	var items []models.MenuItem
	var err error
	if categoryID := c.Query("categoryId"); categoryID != "" {
		items, err = h.store.GetMenuItemsByCategory(categoryID)
	} else {
		items, err = h.store.GetMenuItems()
	}
	if err != nil {
		utils.LogError(err, "GetItems: degraded to empty collection")
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GetItem returns a single menu item by id.
func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.store.GetMenuItem(c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateCategory creates a menu category (admin).
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var category models.MenuCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !utils.IsValidSlug(category.Slug) {
		utils.RespondValidationFailed(c, "slug must be lowercase alphanumerics and hyphens")
		return
	}
	created, err := h.store.CreateMenuCategory(category)
	if err != nil {
		respondStorageError(c, err, "Menu category")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCategory applies a partial update to a menu category (admin).
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	var patch models.MenuCategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if patch.Slug != nil && !utils.IsValidSlug(*patch.Slug) {
		utils.RespondValidationFailed(c, "slug must be lowercase alphanumerics and hyphens")
		return
	}
	updated, err := h.store.UpdateMenuCategory(c.Param("id"), patch)
	if err != nil {
		respondStorageError(c, err, "Menu category")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategory deletes a menu category (admin). Items referencing the
// category are left in place; the admin UI is expected to reassign them.
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	deleted, err := h.store.DeleteMenuCategory(c.Param("id"))
	respondDeleted(c, deleted, err, "Menu category")
}

// CreateItem creates a menu item (admin).
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	created, err := h.store.CreateMenuItem(item)
	if err != nil {
		respondStorageError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateItem applies a partial update to a menu item (admin).
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	updated, err := h.store.UpdateMenuItem(c.Param("id"), patch)
	if err != nil {
		respondStorageError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItem deletes a menu item (admin).
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	deleted, err := h.store.DeleteMenuItem(c.Param("id"))
	respondDeleted(c, deleted, err, "Menu item")
}
