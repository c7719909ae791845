package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"suponos_backend/internal/models"
)

// SeedLoader reads the bundled fixture collections (initial catalog content)
// from a data directory. Each collection loads independently: a read or parse
// failure for one file never prevents the other fixture types from loading.
type SeedLoader struct {
	dir string
}

// NewSeedLoader creates a loader rooted at dir.
func NewSeedLoader(dir string) *SeedLoader {
	return &SeedLoader{dir: dir}
}

// MenuFixture is the shape of menu.json: categories and their items together.
type MenuFixture struct {
	Categories []models.MenuCategory `json:"categories"`
	Items      []models.MenuItem     `json:"items"`
}

func (l *SeedLoader) readJSON(name string, v interface{}) error {
	path := filepath.Join(l.dir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("could not parse fixture %s: %w", name, err)
	}
	return nil
}

// LoadMenu loads menu.json. Item label sets are normalized to non-nil slices.
func (l *SeedLoader) LoadMenu() (*MenuFixture, error) {
	var fixture MenuFixture
	if err := l.readJSON("menu.json", &fixture); err != nil {
		return nil, err
	}
	for i := range fixture.Items {
		fixture.Items[i].Badges = models.NormalizeLabels(fixture.Items[i].Badges)
		fixture.Items[i].Allergens = models.NormalizeLabels(fixture.Items[i].Allergens)
	}
	return &fixture, nil
}

// LoadEvents loads events.json.
func (l *SeedLoader) LoadEvents() ([]models.Event, error) {
	var events []models.Event
	if err := l.readJSON("events.json", &events); err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Tags = models.NormalizeLabels(events[i].Tags)
	}
	return events, nil
}

// LoadGames loads games.json.
func (l *SeedLoader) LoadGames() ([]models.Game, error) {
	var games []models.Game
	if err := l.readJSON("games.json", &games); err != nil {
		return nil, err
	}
	return games, nil
}

// LoadSettings loads settings.json. The fixture carries no id; the singleton
// id is assigned here.
func (l *SeedLoader) LoadSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := l.readJSON("settings.json", &settings); err != nil {
		return nil, err
	}
	settings.ID = models.SingletonID
	if settings.Hours == nil {
		settings.Hours = []models.OpeningHours{}
	}
	if settings.Footer.Links == nil {
		settings.Footer.Links = []models.FooterLink{}
	}
	return &settings, nil
}

// LoadPromotions loads promotions.json.
func (l *SeedLoader) LoadPromotions() (*models.Promotions, error) {
	var promotions models.Promotions
	if err := l.readJSON("promotions.json", &promotions); err != nil {
		return nil, err
	}
	promotions.ID = models.SingletonID
	if promotions.HappyHour.Offers == nil {
		promotions.HappyHour.Offers = []models.HappyHourOffer{}
	}
	return &promotions, nil
}

// LoadLanding loads landing.json.
func (l *SeedLoader) LoadLanding() (*models.LandingContent, error) {
	var landing models.LandingContent
	if err := l.readJSON("landing.json", &landing); err != nil {
		return nil, err
	}
	landing.ID = models.SingletonID
	if landing.Features == nil {
		landing.Features = []models.LandingFeature{}
	}
	return &landing, nil
}
