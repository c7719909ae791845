package storage

import (
	"suponos_backend/internal/models"
	"suponos_backend/pkg/utils"
)

// SeedOutcome is the per-record result of a conflict-tolerant insert. A
// primary-key collision is an expected no-op during migration, not an error,
// so it is reported as a value rather than surfaced through error handling.
type SeedOutcome int

const (
	SeedInserted SeedOutcome = iota
	SeedSkipped
)

// Entity names used for per-type migration bookkeeping.
const (
	entityMenuCategories = "menu_categories"
	entityMenuItems      = "menu_items"
	entityEvents         = "events"
	entityGames          = "games"
	entitySettings       = "settings"
	entityPromotions     = "promotions"
	entityLanding        = "landing"
)

// SeedStore is the subset of the persistent adapter the Migrator drives:
// conflict-tolerant inserts plus per-entity completion bookkeeping. Tracking
// completion per entity type (rather than inferring it from one table's row
// count) means a crash mid-migration self-heals on the next boot: finished
// types are skipped, unfinished types are re-run and their already-inserted
// records skip on conflict.
type SeedStore interface {
	SeedCompleted(entity string) (bool, error)
	MarkSeedCompleted(entity string) error

	SeedMenuCategory(category models.MenuCategory) (SeedOutcome, error)
	SeedMenuItem(item models.MenuItem) (SeedOutcome, error)
	SeedEvent(event models.Event) (SeedOutcome, error)
	SeedGame(game models.Game) (SeedOutcome, error)
	SeedSettings(settings models.SiteSettings) (SeedOutcome, error)
	SeedPromotions(promotions models.Promotions) (SeedOutcome, error)
	SeedLanding(landing models.LandingContent) (SeedOutcome, error)
}

// EntityReport aggregates per-record outcomes for one entity type.
type EntityReport struct {
	Inserted int
	Skipped  int
	Failed   int
}

// MigrationReport is the observable outcome of one migration run. Migration
// is best-effort: partial success is an acceptable terminal state, and this
// report is how operators see it.
type MigrationReport struct {
	Entities      map[string]EntityReport
	FixtureErrors []error
}

// Migrator populates an empty persistent store from the bundled fixtures.
// Running it any number of times yields the same store contents.
type Migrator struct {
	store  SeedStore
	loader *SeedLoader
}

// NewMigrator creates a migrator over the given store and fixture loader.
func NewMigrator(store SeedStore, loader *SeedLoader) *Migrator {
	return &Migrator{store: store, loader: loader}
}

// Run executes the migration in dependency order (categories before the items
// that reference them). A fixture that fails to load, or a record that fails
// to insert, is logged and skipped; it never aborts the remaining steps.
func (m *Migrator) Run() *MigrationReport {
	report := &MigrationReport{Entities: make(map[string]EntityReport)}

	var menu *MenuFixture
	menuErr := m.step(report, entityMenuCategories, func() (int, error) {
		var err error
		menu, err = m.loader.LoadMenu()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entityMenuCategories, len(menu.Categories), func(i int) (SeedOutcome, error) {
			return m.store.SeedMenuCategory(menu.Categories[i])
		}), nil
	})

	m.step(report, entityMenuItems, func() (int, error) {
		if menu == nil {
			if menuErr != nil {
				return 0, menuErr
			}
			var err error
			menu, err = m.loader.LoadMenu()
			if err != nil {
				return 0, err
			}
		}
		return m.seedRecords(report, entityMenuItems, len(menu.Items), func(i int) (SeedOutcome, error) {
			return m.store.SeedMenuItem(menu.Items[i])
		}), nil
	})

	m.step(report, entityEvents, func() (int, error) {
		events, err := m.loader.LoadEvents()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entityEvents, len(events), func(i int) (SeedOutcome, error) {
			return m.store.SeedEvent(events[i])
		}), nil
	})

	m.step(report, entityGames, func() (int, error) {
		games, err := m.loader.LoadGames()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entityGames, len(games), func(i int) (SeedOutcome, error) {
			return m.store.SeedGame(games[i])
		}), nil
	})

	m.step(report, entitySettings, func() (int, error) {
		settings, err := m.loader.LoadSettings()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entitySettings, 1, func(int) (SeedOutcome, error) {
			return m.store.SeedSettings(*settings)
		}), nil
	})

	m.step(report, entityPromotions, func() (int, error) {
		promotions, err := m.loader.LoadPromotions()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entityPromotions, 1, func(int) (SeedOutcome, error) {
			return m.store.SeedPromotions(*promotions)
		}), nil
	})

	m.step(report, entityLanding, func() (int, error) {
		landing, err := m.loader.LoadLanding()
		if err != nil {
			return 0, err
		}
		return m.seedRecords(report, entityLanding, 1, func(int) (SeedOutcome, error) {
			return m.store.SeedLanding(*landing)
		}), nil
	})

	for entity, r := range report.Entities {
		utils.LogInfo("Migration step finished", map[string]interface{}{
			"entity":   entity,
			"inserted": r.Inserted,
			"skipped":  r.Skipped,
			"failed":   r.Failed,
		})
	}
	return report
}

// step runs one entity type's migration if it has not completed before. The
// returned error is the fixture-load error, if any, so dependent steps can
// reuse it.
func (m *Migrator) step(report *MigrationReport, entity string, run func() (int, error)) error {
	done, err := m.store.SeedCompleted(entity)
	if err != nil {
		utils.LogError(err, "migration: could not check seed state for "+entity)
		return err
	}
	if done {
		return nil
	}

	failed, err := run()
	if err != nil {
		// Fixture unavailable: leave the step incomplete so a later boot with
		// restored fixtures retries it.
		utils.LogError(err, "migration: fixtures unavailable for "+entity)
		report.FixtureErrors = append(report.FixtureErrors, err)
		return err
	}
	if failed > 0 {
		// Some records did not make it in; keep the step incomplete so the
		// next boot retries, with conflicts skipping the rest.
		return nil
	}
	if err := m.store.MarkSeedCompleted(entity); err != nil {
		utils.LogError(err, "migration: could not mark "+entity+" complete")
	}
	return nil
}

// seedRecords inserts count records through insert, aggregating outcomes into
// the report. Returns the number of hard failures.
func (m *Migrator) seedRecords(report *MigrationReport, entity string, count int, insert func(int) (SeedOutcome, error)) int {
	r := report.Entities[entity]
	for i := 0; i < count; i++ {
		outcome, err := insert(i)
		if err != nil {
			r.Failed++
			utils.LogError(err, "migration: record insert failed for "+entity)
			continue
		}
		switch outcome {
		case SeedInserted:
			r.Inserted++
		case SeedSkipped:
			r.Skipped++
		}
	}
	report.Entities[entity] = r
	return r.Failed
}
