package storage

import (
	"os"
	"path/filepath"
	"testing"

	"suponos_backend/internal/models"
)

func TestSeedLoaderLoadsEveryCollection(t *testing.T) {
	loader := NewSeedLoader(writeFixtureDir(t))

	menu, err := loader.LoadMenu()
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
	if len(menu.Categories) != 2 || len(menu.Items) != 2 {
		t.Fatalf("unexpected menu fixture sizes: %d categories, %d items", len(menu.Categories), len(menu.Items))
	}
	for _, item := range menu.Items {
		if item.Badges == nil || item.Allergens == nil {
			t.Errorf("item %s label sets must be normalized to non-nil", item.ID)
		}
	}

	events, err := loader.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	for _, e := range events {
		if e.Tags == nil {
			t.Errorf("event %s tags must be normalized to non-nil", e.ID)
		}
	}

	if _, err := loader.LoadGames(); err != nil {
		t.Fatalf("LoadGames: %v", err)
	}

	settings, err := loader.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.ID != models.SingletonID {
		t.Errorf("settings must carry the singleton id, got %q", settings.ID)
	}

	promotions, err := loader.LoadPromotions()
	if err != nil {
		t.Fatalf("LoadPromotions: %v", err)
	}
	if promotions.ID != models.SingletonID {
		t.Errorf("promotions must carry the singleton id, got %q", promotions.ID)
	}

	landing, err := loader.LoadLanding()
	if err != nil {
		t.Fatalf("LoadLanding: %v", err)
	}
	if landing.ID != models.SingletonID {
		t.Errorf("landing must carry the singleton id, got %q", landing.ID)
	}
}

func TestSeedLoaderFailuresAreIsolated(t *testing.T) {
	dir := writeFixtureDir(t)
	if err := os.WriteFile(filepath.Join(dir, "menu.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupting menu.json: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "games.json")); err != nil {
		t.Fatalf("removing games.json: %v", err)
	}
	loader := NewSeedLoader(dir)

	if _, err := loader.LoadMenu(); err == nil {
		t.Error("LoadMenu must fail on corrupt fixture")
	}
	if _, err := loader.LoadGames(); err == nil {
		t.Error("LoadGames must fail on missing fixture")
	}

	// The broken collections must not take the healthy ones down with them.
	if _, err := loader.LoadEvents(); err != nil {
		t.Errorf("LoadEvents: %v", err)
	}
	if _, err := loader.LoadSettings(); err != nil {
		t.Errorf("LoadSettings: %v", err)
	}
}

func TestSeedLoaderDefaultsNilSingletonCollections(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.json"),
		[]byte(`{"name": "Bar", "address": "a", "phone": "p", "email": "e"}`), 0o644); err != nil {
		t.Fatalf("writing settings.json: %v", err)
	}
	loader := NewSeedLoader(dir)

	settings, err := loader.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Hours == nil {
		t.Error("hours must default to an empty slice")
	}
	if settings.Footer.Links == nil {
		t.Error("footer links must default to an empty slice")
	}
}
