package storage

import (
	"errors"
	"testing"
	"time"

	"suponos_backend/internal/models"
)

func TestMemoryStorageSeedsFromFixtures(t *testing.T) {
	s := NewMemoryStorage(writeFixtureDir(t))

	categories, err := s.GetMenuCategories()
	if err != nil {
		t.Fatalf("GetMenuCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != "cat-apps" || categories[1].ID != "cat-drinks" {
		t.Errorf("categories not ordered by display order: %q, %q", categories[0].ID, categories[1].ID)
	}

	items, err := s.GetMenuItemsByCategory("cat-apps")
	if err != nil {
		t.Fatalf("GetMenuItemsByCategory: %v", err)
	}
	if len(items) != 1 || items[0].ID != "item-wings" {
		t.Fatalf("expected only item-wings in cat-apps, got %v", items)
	}

	// Fixture with no badges declared still yields a non-nil slice.
	beer, err := s.GetMenuItem("item-beer")
	if err != nil {
		t.Fatalf("GetMenuItem: %v", err)
	}
	if beer.Badges == nil || beer.Allergens == nil {
		t.Error("label sets must be non-nil after seeding")
	}

	events, err := s.GetEvents()
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 2 || events[0].ID != "event-fight" {
		t.Fatalf("events not ordered by start date: %v", events)
	}
}

func TestMemoryStorageMissingFixturesDegrades(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	categories, err := s.GetMenuCategories()
	if err != nil {
		t.Fatalf("GetMenuCategories: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("expected empty categories, got %d", len(categories))
	}

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.Name == "" {
		t.Error("default settings must carry a renderable name")
	}
	if settings.Hours == nil || settings.Footer.Links == nil {
		t.Error("default settings must have non-nil collections")
	}

	landing, err := s.GetLandingData()
	if err != nil {
		t.Fatalf("GetLandingData: %v", err)
	}
	if landing.Features == nil {
		t.Error("default landing content must have non-nil features")
	}
}

func TestMemoryStorageCategoryCRUD(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	created, err := s.CreateMenuCategory(models.MenuCategory{ID: "cat-1", Name: "Mains", Slug: "mains", DisplayOrder: 1})
	if err != nil {
		t.Fatalf("CreateMenuCategory: %v", err)
	}
	if created.ID != "cat-1" {
		t.Errorf("unexpected id %q", created.ID)
	}

	// Same slug, different id.
	if _, err := s.CreateMenuCategory(models.MenuCategory{ID: "cat-2", Name: "Other", Slug: "mains"}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for duplicate slug, got %v", err)
	}

	updated, err := s.UpdateMenuCategory("cat-1", models.MenuCategoryPatch{Name: strPtr("Main Plates")})
	if err != nil {
		t.Fatalf("UpdateMenuCategory: %v", err)
	}
	if updated.Name != "Main Plates" || updated.Slug != "mains" {
		t.Errorf("patch must only touch supplied fields: %+v", updated)
	}

	if _, err := s.UpdateMenuCategory("missing", models.MenuCategoryPatch{Name: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on update of missing id, got %v", err)
	}

	deleted, err := s.DeleteMenuCategory("cat-1")
	if err != nil || !deleted {
		t.Fatalf("DeleteMenuCategory: deleted=%v err=%v", deleted, err)
	}
	deleted, err = s.DeleteMenuCategory("cat-1")
	if err != nil || deleted {
		t.Fatalf("second delete must be (false, nil), got deleted=%v err=%v", deleted, err)
	}

	if _, err := s.GetMenuCategory("cat-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStorageCategoryItemFlow(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	if _, err := s.CreateMenuCategory(models.MenuCategory{ID: "apps", Name: "Appetizers", Slug: "appetizers", DisplayOrder: 1}); err != nil {
		t.Fatalf("CreateMenuCategory: %v", err)
	}
	if _, err := s.CreateMenuItem(models.MenuItem{ID: "wings", CategoryID: "apps", Name: "Wings", Price: 1299}); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	items, err := s.GetMenuItemsByCategory("apps")
	if err != nil {
		t.Fatalf("GetMenuItemsByCategory: %v", err)
	}
	if len(items) != 1 || items[0].ID != "wings" {
		t.Fatalf("expected exactly the wings item, got %v", items)
	}
	if items[0].Badges == nil || items[0].Allergens == nil {
		t.Error("label sets must be non-nil even when omitted at create")
	}

	empty, err := s.GetMenuItemsByCategory("nonexistent")
	if err != nil {
		t.Fatalf("GetMenuItemsByCategory on unknown category: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("unknown category must yield an empty list, got %v", empty)
	}
}

func TestMemoryStorageMenuItemPatch(t *testing.T) {
	s := NewMemoryStorage(writeFixtureDir(t))

	updated, err := s.UpdateMenuItem("item-wings", models.MenuItemPatch{
		Price:  intPtr(1495),
		Badges: &[]string{"spicy", "fan-favorite"},
	})
	if err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if updated.Price != 1495 {
		t.Errorf("price not updated: %d", updated.Price)
	}
	if len(updated.Badges) != 2 {
		t.Errorf("badges not replaced: %v", updated.Badges)
	}
	if updated.Name != "Wings" {
		t.Errorf("unpatched field changed: %q", updated.Name)
	}
}

func TestMemoryStorageEventSlugUniqueness(t *testing.T) {
	s := NewMemoryStorage(writeFixtureDir(t))

	if _, err := s.CreateEvent(models.Event{
		ID: "event-dup", Title: "Another Trivia", Slug: "trivia-night",
		StartDate: time.Now(), EndDate: time.Now().Add(2 * time.Hour),
	}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for duplicate event slug, got %v", err)
	}

	if _, err := s.UpdateEvent("event-fight", models.EventPatch{Slug: strPtr("trivia-night")}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey when patching to a taken slug, got %v", err)
	}

	// Patching an event to its own slug is a no-op, not a conflict.
	if _, err := s.UpdateEvent("event-fight", models.EventPatch{Slug: strPtr("fight-night")}); err != nil {
		t.Errorf("self-slug patch must succeed, got %v", err)
	}

	event, err := s.GetEventBySlug("trivia-night")
	if err != nil {
		t.Fatalf("GetEventBySlug: %v", err)
	}
	if event.ID != "event-trivia" {
		t.Errorf("unexpected event %q", event.ID)
	}
}

func TestMemoryStorageGameWindows(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())
	now := time.Now()

	mustCreateGame := func(id string, start time.Time) {
		t.Helper()
		if _, err := s.CreateGame(models.Game{
			ID: id, League: "NFL", HomeTeam: "Home", AwayTeam: "Away",
			HomeAbbr: "H", AwayAbbr: "A", StartTime: start,
		}); err != nil {
			t.Fatalf("CreateGame %s: %v", id, err)
		}
	}

	// Exact boundary probes around the half-open day window.
	startOfDay, endOfDay := models.DayWindow(now)
	mustCreateGame("game-yesterday", startOfDay.Add(-time.Minute))
	mustCreateGame("game-midnight", startOfDay)
	mustCreateGame("game-late", endOfDay.Add(-time.Minute))
	mustCreateGame("game-tomorrow", endOfDay)

	today, err := s.GetTodaysGames()
	if err != nil {
		t.Fatalf("GetTodaysGames: %v", err)
	}
	if len(today) != 2 || today[0].ID != "game-midnight" || today[1].ID != "game-late" {
		t.Fatalf("expected exactly game-midnight and game-late, got %v", today)
	}

	upcoming, err := s.GetUpcomingGames()
	if err != nil {
		t.Fatalf("GetUpcomingGames: %v", err)
	}
	for _, g := range upcoming {
		if g.ID == "game-yesterday" {
			t.Error("upcoming games must not include past games")
		}
	}

	all, err := s.GetGames()
	if err != nil {
		t.Fatalf("GetGames: %v", err)
	}
	if len(all) != 4 || all[0].ID != "game-yesterday" {
		t.Fatalf("full schedule not ordered by start time: %v", all)
	}
}

func TestMemoryStorageReservationLifecycle(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	created, err := s.CreateReservation(models.InsertReservation{
		Name: "Jordan Lee", Email: "jordan@example.com", Phone: "555-0101",
		PartySize: 4, Date: time.Now().Add(48 * time.Hour), Time: "19:00",
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if created.ID == "" {
		t.Error("server must assign a reservation id")
	}
	if created.Status != models.ReservationStatusPending {
		t.Errorf("new reservations must be pending, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("server must stamp creation time")
	}

	status := models.ReservationStatusConfirmed
	updated, err := s.UpdateReservation(created.ID, models.ReservationPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if updated.Status != models.ReservationStatusConfirmed {
		t.Errorf("status not updated: %q", updated.Status)
	}
	if updated.Name != "Jordan Lee" {
		t.Errorf("patch must not touch identity fields: %q", updated.Name)
	}

	deleted, err := s.DeleteReservation(created.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteReservation: deleted=%v err=%v", deleted, err)
	}
	if deleted, err = s.DeleteReservation(created.ID); err != nil || deleted {
		t.Fatalf("repeat delete must be (false, nil), got deleted=%v err=%v", deleted, err)
	}
}

func TestMemoryStorageSingletonUpdates(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	updated, err := s.UpdateSettings(models.SiteSettings{
		ID: "whatever", Name: "Renamed Bar", Address: "2 New St", Phone: "555-0199", Email: "new@bar.com",
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.ID != models.SingletonID {
		t.Errorf("singleton id must be normalized, got %q", updated.ID)
	}
	if updated.Hours == nil {
		t.Error("hours must be non-nil after update")
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.Name != "Renamed Bar" {
		t.Errorf("update not visible on read: %q", got.Name)
	}

	promotions, err := s.UpdatePromotions(models.Promotions{HappyHour: models.HappyHour{Enabled: true}})
	if err != nil {
		t.Fatalf("UpdatePromotions: %v", err)
	}
	if promotions.HappyHour.Offers == nil {
		t.Error("happy hour offers must be non-nil after update")
	}
}

func TestMemoryStorageUsers(t *testing.T) {
	s := NewMemoryStorage(t.TempDir())

	u, err := s.CreateUser(models.InsertUser{Username: "admin", Email: "admin@bar.com", Password: "ignored"}, "hash-1")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == 0 {
		t.Error("user id must be assigned")
	}
	if u.Password != "hash-1" {
		t.Errorf("stored password must be the supplied hash, got %q", u.Password)
	}

	if _, err := s.CreateUser(models.InsertUser{Username: "admin", Email: "other@bar.com"}, "hash-2"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for duplicate username, got %v", err)
	}
	if _, err := s.CreateUser(models.InsertUser{Username: "other", Email: "admin@bar.com"}, "hash-2"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for duplicate email, got %v", err)
	}

	byName, err := s.GetUserByUsername("admin")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	byID, err := s.GetUserByID(byName.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Username != "admin" {
		t.Errorf("lookup mismatch: %q", byID.Username)
	}

	if _, err := s.GetUserByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown username, got %v", err)
	}
}
