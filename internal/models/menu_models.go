package models

// MenuCategory represents a section of the menu (e.g. Appetizers, Wings).
// Categories come with stable string ids so fixture data and admin forms can
// supply deterministic keys.
type MenuCategory struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

// MenuItem represents a single dish or drink on the menu.
// Price is stored in the smallest currency unit (cents).
// Badges and Allergens are always non-nil; empty means none.
type MenuItem struct {
	ID          string   `json:"id" binding:"required"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description,omitempty"`
	Price       int      `json:"price" binding:"required"`
	Image       *string  `json:"image,omitempty"`
	Badges      []string `json:"badges"`
	Allergens   []string `json:"allergens"`
}

// MenuCategoryPatch is a partial update; nil fields are left unchanged.
type MenuCategoryPatch struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// MenuItemPatch is a partial update; nil fields are left unchanged.
type MenuItemPatch struct {
	CategoryID  *string   `json:"categoryId,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Badges      *[]string `json:"badges,omitempty"`
	Allergens   *[]string `json:"allergens,omitempty"`
}

// NormalizeLabels returns a non-nil copy of a label set.
func NormalizeLabels(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
