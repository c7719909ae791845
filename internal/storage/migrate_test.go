package storage

import (
	"os"
	"path/filepath"
	"testing"

	"suponos_backend/internal/models"
)

// fakeSeedStore records conflict-tolerant inserts in maps, mimicking the
// persistent adapter's ON CONFLICT DO NOTHING behaviour.
type fakeSeedStore struct {
	completed map[string]bool
	rows      map[string]map[string]bool // entity -> id set
	failIDs   map[string]bool            // ids whose insert hard-fails
}

func newFakeSeedStore() *fakeSeedStore {
	return &fakeSeedStore{
		completed: make(map[string]bool),
		rows:      make(map[string]map[string]bool),
		failIDs:   make(map[string]bool),
	}
}

func (f *fakeSeedStore) SeedCompleted(entity string) (bool, error) {
	return f.completed[entity], nil
}

func (f *fakeSeedStore) MarkSeedCompleted(entity string) error {
	f.completed[entity] = true
	return nil
}

func (f *fakeSeedStore) insert(entity, id string) (SeedOutcome, error) {
	if f.failIDs[id] {
		return 0, ErrDatabaseError
	}
	if f.rows[entity] == nil {
		f.rows[entity] = make(map[string]bool)
	}
	if f.rows[entity][id] {
		return SeedSkipped, nil
	}
	f.rows[entity][id] = true
	return SeedInserted, nil
}

func (f *fakeSeedStore) SeedMenuCategory(c models.MenuCategory) (SeedOutcome, error) {
	return f.insert(entityMenuCategories, c.ID)
}
func (f *fakeSeedStore) SeedMenuItem(i models.MenuItem) (SeedOutcome, error) {
	return f.insert(entityMenuItems, i.ID)
}
func (f *fakeSeedStore) SeedEvent(e models.Event) (SeedOutcome, error) {
	return f.insert(entityEvents, e.ID)
}
func (f *fakeSeedStore) SeedGame(g models.Game) (SeedOutcome, error) {
	return f.insert(entityGames, g.ID)
}
func (f *fakeSeedStore) SeedSettings(s models.SiteSettings) (SeedOutcome, error) {
	return f.insert(entitySettings, s.ID)
}
func (f *fakeSeedStore) SeedPromotions(p models.Promotions) (SeedOutcome, error) {
	return f.insert(entityPromotions, p.ID)
}
func (f *fakeSeedStore) SeedLanding(l models.LandingContent) (SeedOutcome, error) {
	return f.insert(entityLanding, l.ID)
}

func TestMigratorPopulatesEmptyStore(t *testing.T) {
	store := newFakeSeedStore()
	report := NewMigrator(store, NewSeedLoader(writeFixtureDir(t))).Run()

	want := map[string]int{
		entityMenuCategories: 2,
		entityMenuItems:      2,
		entityEvents:         2,
		entityGames:          1,
		entitySettings:       1,
		entityPromotions:     1,
		entityLanding:        1,
	}
	for entity, inserted := range want {
		r := report.Entities[entity]
		if r.Inserted != inserted || r.Skipped != 0 || r.Failed != 0 {
			t.Errorf("%s: got %+v, want %d inserted", entity, r, inserted)
		}
		if !store.completed[entity] {
			t.Errorf("%s: clean step must be marked complete", entity)
		}
	}
	if len(report.FixtureErrors) != 0 {
		t.Errorf("unexpected fixture errors: %v", report.FixtureErrors)
	}
}

func TestMigratorSecondRunIsNoOp(t *testing.T) {
	store := newFakeSeedStore()
	loader := NewSeedLoader(writeFixtureDir(t))
	NewMigrator(store, loader).Run()

	report := NewMigrator(store, loader).Run()
	for entity, r := range report.Entities {
		if r.Inserted != 0 || r.Skipped != 0 || r.Failed != 0 {
			t.Errorf("%s: completed step must not re-run, got %+v", entity, r)
		}
	}
}

func TestMigratorResumesPartialEntity(t *testing.T) {
	// Simulates a crash after one category made it in but before the step was
	// marked complete: the re-run skips the existing row and inserts the rest.
	store := newFakeSeedStore()
	store.rows[entityMenuCategories] = map[string]bool{"cat-apps": true}

	report := NewMigrator(store, NewSeedLoader(writeFixtureDir(t))).Run()

	r := report.Entities[entityMenuCategories]
	if r.Inserted != 1 || r.Skipped != 1 || r.Failed != 0 {
		t.Errorf("expected 1 inserted / 1 skipped, got %+v", r)
	}
	if !store.completed[entityMenuCategories] {
		t.Error("resumed step must be marked complete once every record is present")
	}
}

func TestMigratorLeavesFailedEntityIncomplete(t *testing.T) {
	store := newFakeSeedStore()
	store.failIDs["item-wings"] = true

	report := NewMigrator(store, NewSeedLoader(writeFixtureDir(t))).Run()

	r := report.Entities[entityMenuItems]
	if r.Failed != 1 || r.Inserted != 1 {
		t.Errorf("expected 1 failed / 1 inserted, got %+v", r)
	}
	if store.completed[entityMenuItems] {
		t.Error("step with failures must stay incomplete so the next boot retries")
	}
	// Other steps are unaffected.
	if !store.completed[entityEvents] {
		t.Error("unrelated steps must still complete")
	}

	// Next boot: the failing record is healthy again, only it gets inserted.
	store.failIDs = map[string]bool{}
	report = NewMigrator(store, NewSeedLoader(writeFixtureDir(t))).Run()
	r = report.Entities[entityMenuItems]
	if r.Inserted != 1 || r.Skipped != 1 {
		t.Errorf("retry must insert the missing record and skip the rest, got %+v", r)
	}
	if !store.completed[entityMenuItems] {
		t.Error("retried step must complete")
	}
}

func TestMigratorToleratesMissingFixtures(t *testing.T) {
	dir := writeFixtureDir(t)
	if err := os.Remove(filepath.Join(dir, "events.json")); err != nil {
		t.Fatalf("removing events.json: %v", err)
	}
	store := newFakeSeedStore()

	report := NewMigrator(store, NewSeedLoader(dir)).Run()

	if len(report.FixtureErrors) != 1 {
		t.Fatalf("expected exactly one fixture error, got %v", report.FixtureErrors)
	}
	if store.completed[entityEvents] {
		t.Error("step with an unavailable fixture must stay incomplete")
	}
	// The rest of the migration still runs.
	if !store.completed[entityGames] || !store.completed[entitySettings] {
		t.Error("remaining steps must run despite the missing fixture")
	}
}
