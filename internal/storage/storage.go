package storage

import (
	"suponos_backend/internal/models"
)

// Storage is the capability interface over the bar's content. Two
// implementations exist: PostgresStorage (persistent, the production backend)
// and MemoryStorage (in-process, for local development and as a fallback when
// no database is reachable). Both satisfy identical contracts:
//
//   - Get* on a missing id/slug returns ErrNotFound, never a driver error.
//   - Delete* is idempotent: deleting a missing id returns (false, nil).
//   - Update* applies a partial patch and never creates as a side effect.
//   - Create* enforces the uniqueness invariants storage owns (slug, username,
//     email) and returns ErrDuplicateKey on violation.
//   - List operations return a deterministic order enforced by the adapter:
//     categories by display order, events by start date, games by start time,
//     reservations by creation time.
//   - Singleton getters always return a renderable shape; an uninitialized
//     singleton yields the documented default, not an error.
type Storage interface {
	// Menu categories
	GetMenuCategories() ([]models.MenuCategory, error)
	GetMenuCategory(id string) (*models.MenuCategory, error)
	CreateMenuCategory(category models.MenuCategory) (*models.MenuCategory, error)
	UpdateMenuCategory(id string, patch models.MenuCategoryPatch) (*models.MenuCategory, error)
	DeleteMenuCategory(id string) (bool, error)

	// Menu items
	GetMenuItems() ([]models.MenuItem, error)
	GetMenuItemsByCategory(categoryID string) ([]models.MenuItem, error)
	GetMenuItem(id string) (*models.MenuItem, error)
	CreateMenuItem(item models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(id string, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(id string) (bool, error)

	// Events
	GetEvents() ([]models.Event, error)
	GetEvent(id string) (*models.Event, error)
	GetEventBySlug(slug string) (*models.Event, error)
	CreateEvent(event models.Event) (*models.Event, error)
	UpdateEvent(id string, patch models.EventPatch) (*models.Event, error)
	DeleteEvent(id string) (bool, error)

	// Games
	GetGames() ([]models.Game, error)
	GetTodaysGames() ([]models.Game, error)
	GetUpcomingGames() ([]models.Game, error)
	GetGame(id string) (*models.Game, error)
	CreateGame(game models.Game) (*models.Game, error)
	UpdateGame(id string, patch models.GamePatch) (*models.Game, error)
	DeleteGame(id string) (bool, error)

	// Reservations
	GetReservations() ([]models.Reservation, error)
	GetReservation(id string) (*models.Reservation, error)
	CreateReservation(reservation models.InsertReservation) (*models.Reservation, error)
	UpdateReservation(id string, patch models.ReservationPatch) (*models.Reservation, error)
	DeleteReservation(id string) (bool, error)

	// Singletons
	GetSettings() (*models.SiteSettings, error)
	UpdateSettings(settings models.SiteSettings) (*models.SiteSettings, error)
	GetPromotionsData() (*models.Promotions, error)
	UpdatePromotions(promotions models.Promotions) (*models.Promotions, error)
	GetLandingData() (*models.LandingContent, error)
	UpdateLanding(landing models.LandingContent) (*models.LandingContent, error)

	// Users
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	CreateUser(user models.InsertUser, passwordHash string) (*models.User, error)
}
