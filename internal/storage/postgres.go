package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"suponos_backend/internal/models"
)

// PostgresStorage implements Storage against a relational database. The
// database client is injected once at construction; ordering and filtering are
// enforced in SQL so both adapters produce identical results for identical
// data. Uniqueness invariants (slugs, usernames, emails) are enforced by the
// database's constraints and surfaced as ErrDuplicateKey.
type PostgresStorage struct {
	db SQLExecutor
}

// NewPostgresStorage creates the persistent adapter and runs the one-time
// fixture migration against it. Migration is best-effort and safely
// re-runnable; its outcome is logged, never fatal.
func NewPostgresStorage(db *sql.DB, loader *SeedLoader) *PostgresStorage {
	s := &PostgresStorage{db: db}
	NewMigrator(s, loader).Run()
	return s
}

// mapInsertErr translates pq constraint violations into the storage taxonomy.
func mapInsertErr(err error, context string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, context, pqErr.Constraint)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s violates %s", ErrDatabaseError, context, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, context, err)
}

func jsonbArg(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling jsonb value: %v", ErrDatabaseError, err)
	}
	return raw, nil
}

func fromJSONB(raw []byte, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: unmarshaling jsonb value: %v", ErrDatabaseError, err)
	}
	return nil
}

// deleteByID runs a delete and reports whether a row existed. Deleting a
// missing id is not an error.
func (s *PostgresStorage) deleteByID(table, id string) (bool, error) {
	result, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, fmt.Errorf("%w: deleting from %s: %v", ErrDatabaseError, table, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// --- Menu Categories ---

const selectMenuCategoryFields = "id, name, slug, display_order"

func scanMenuCategory(row scanner) (*models.MenuCategory, error) {
	var c models.MenuCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning menu category: %v", ErrDatabaseError, err)
	}
	return &c, nil
}

func (s *PostgresStorage) GetMenuCategories() ([]models.MenuCategory, error) {
	query := "SELECT " + selectMenuCategoryFields + " FROM menu_categories ORDER BY display_order"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	categories := []models.MenuCategory{}
	for rows.Next() {
		c, err := scanMenuCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu categories: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func (s *PostgresStorage) GetMenuCategory(id string) (*models.MenuCategory, error) {
	query := "SELECT " + selectMenuCategoryFields + " FROM menu_categories WHERE id = $1"
	return scanMenuCategory(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) CreateMenuCategory(category models.MenuCategory) (*models.MenuCategory, error) {
	query := `INSERT INTO menu_categories (id, name, slug, display_order) VALUES ($1, $2, $3, $4)`
	_, err := s.db.Exec(query, category.ID, category.Name, category.Slug, category.DisplayOrder)
	if err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("creating menu category '%s'", category.ID))
	}
	return &category, nil
}

func (s *PostgresStorage) UpdateMenuCategory(id string, patch models.MenuCategoryPatch) (*models.MenuCategory, error) {
	c, err := s.GetMenuCategory(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Slug != nil {
		c.Slug = *patch.Slug
	}
	if patch.DisplayOrder != nil {
		c.DisplayOrder = *patch.DisplayOrder
	}
	query := `UPDATE menu_categories SET name = $1, slug = $2, display_order = $3 WHERE id = $4`
	if _, err := s.db.Exec(query, c.Name, c.Slug, c.DisplayOrder, id); err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("updating menu category '%s'", id))
	}
	return c, nil
}

func (s *PostgresStorage) DeleteMenuCategory(id string) (bool, error) {
	return s.deleteByID("menu_categories", id)
}

// --- Menu Items ---

const selectMenuItemFields = "id, category_id, name, description, price, image, badges, allergens"

func scanMenuItem(row scanner) (*models.MenuItem, error) {
	var i models.MenuItem
	var description, image sql.NullString
	var badges, allergens []byte
	err := row.Scan(&i.ID, &i.CategoryID, &i.Name, &description, &i.Price, &image, &badges, &allergens)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
	}
	if description.Valid {
		i.Description = &description.String
	}
	if image.Valid {
		i.Image = &image.String
	}
	if err := fromJSONB(badges, &i.Badges); err != nil {
		return nil, err
	}
	if err := fromJSONB(allergens, &i.Allergens); err != nil {
		return nil, err
	}
	i.Badges = models.NormalizeLabels(i.Badges)
	i.Allergens = models.NormalizeLabels(i.Allergens)
	return &i, nil
}

func (s *PostgresStorage) queryMenuItems(query string, args ...interface{}) ([]models.MenuItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		i, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (s *PostgresStorage) GetMenuItems() ([]models.MenuItem, error) {
	return s.queryMenuItems("SELECT " + selectMenuItemFields + " FROM menu_items ORDER BY name")
}

func (s *PostgresStorage) GetMenuItemsByCategory(categoryID string) ([]models.MenuItem, error) {
	query := "SELECT " + selectMenuItemFields + " FROM menu_items WHERE category_id = $1 ORDER BY name"
	return s.queryMenuItems(query, categoryID)
}

func (s *PostgresStorage) GetMenuItem(id string) (*models.MenuItem, error) {
	query := "SELECT " + selectMenuItemFields + " FROM menu_items WHERE id = $1"
	return scanMenuItem(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) insertMenuItem(item models.MenuItem, conflictTolerant bool) (int64, error) {
	badges, err := jsonbArg(models.NormalizeLabels(item.Badges))
	if err != nil {
		return 0, err
	}
	allergens, err := jsonbArg(models.NormalizeLabels(item.Allergens))
	if err != nil {
		return 0, err
	}
	query := `INSERT INTO menu_items (id, category_id, name, description, price, image, badges, allergens)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	}
	result, err := s.db.Exec(query, item.ID, item.CategoryID, item.Name, item.Description,
		item.Price, item.Image, badges, allergens)
	if err != nil {
		return 0, mapInsertErr(err, fmt.Sprintf("creating menu item '%s'", item.ID))
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) CreateMenuItem(item models.MenuItem) (*models.MenuItem, error) {
	if _, err := s.insertMenuItem(item, false); err != nil {
		return nil, err
	}
	return s.GetMenuItem(item.ID)
}

func (s *PostgresStorage) UpdateMenuItem(id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	i, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	if patch.CategoryID != nil {
		i.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Description != nil {
		i.Description = patch.Description
	}
	if patch.Price != nil {
		i.Price = *patch.Price
	}
	if patch.Image != nil {
		i.Image = patch.Image
	}
	if patch.Badges != nil {
		i.Badges = models.NormalizeLabels(*patch.Badges)
	}
	if patch.Allergens != nil {
		i.Allergens = models.NormalizeLabels(*patch.Allergens)
	}
	badges, err := jsonbArg(i.Badges)
	if err != nil {
		return nil, err
	}
	allergens, err := jsonbArg(i.Allergens)
	if err != nil {
		return nil, err
	}
	query := `UPDATE menu_items SET category_id = $1, name = $2, description = $3, price = $4,
	          image = $5, badges = $6, allergens = $7 WHERE id = $8`
	if _, err := s.db.Exec(query, i.CategoryID, i.Name, i.Description, i.Price, i.Image,
		badges, allergens, id); err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("updating menu item '%s'", id))
	}
	return i, nil
}

func (s *PostgresStorage) DeleteMenuItem(id string) (bool, error) {
	return s.deleteByID("menu_items", id)
}

// --- Events ---

const selectEventFields = "id, title, slug, start_date, end_date, description, image, tags"

func scanEvent(row scanner) (*models.Event, error) {
	var e models.Event
	var description, image sql.NullString
	var tags []byte
	err := row.Scan(&e.ID, &e.Title, &e.Slug, &e.StartDate, &e.EndDate, &description, &image, &tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning event: %v", ErrDatabaseError, err)
	}
	if description.Valid {
		e.Description = &description.String
	}
	if image.Valid {
		e.Image = &image.String
	}
	if err := fromJSONB(tags, &e.Tags); err != nil {
		return nil, err
	}
	e.Tags = models.NormalizeLabels(e.Tags)
	return &e, nil
}

func (s *PostgresStorage) GetEvents() ([]models.Event, error) {
	query := "SELECT " + selectEventFields + " FROM events ORDER BY start_date"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating events: %v", ErrDatabaseError, err)
	}
	return events, nil
}

func (s *PostgresStorage) GetEvent(id string) (*models.Event, error) {
	query := "SELECT " + selectEventFields + " FROM events WHERE id = $1"
	return scanEvent(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) GetEventBySlug(slug string) (*models.Event, error) {
	query := "SELECT " + selectEventFields + " FROM events WHERE slug = $1"
	return scanEvent(s.db.QueryRow(query, slug))
}

func (s *PostgresStorage) insertEvent(event models.Event, conflictTolerant bool) (int64, error) {
	tags, err := jsonbArg(models.NormalizeLabels(event.Tags))
	if err != nil {
		return 0, err
	}
	query := `INSERT INTO events (id, title, slug, start_date, end_date, description, image, tags)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	}
	result, err := s.db.Exec(query, event.ID, event.Title, event.Slug, event.StartDate,
		event.EndDate, event.Description, event.Image, tags)
	if err != nil {
		return 0, mapInsertErr(err, fmt.Sprintf("creating event '%s'", event.ID))
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) CreateEvent(event models.Event) (*models.Event, error) {
	if _, err := s.insertEvent(event, false); err != nil {
		return nil, err
	}
	return s.GetEvent(event.ID)
}

func (s *PostgresStorage) UpdateEvent(id string, patch models.EventPatch) (*models.Event, error) {
	e, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Slug != nil {
		e.Slug = *patch.Slug
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Description != nil {
		e.Description = patch.Description
	}
	if patch.Image != nil {
		e.Image = patch.Image
	}
	if patch.Tags != nil {
		e.Tags = models.NormalizeLabels(*patch.Tags)
	}
	tags, err := jsonbArg(e.Tags)
	if err != nil {
		return nil, err
	}
	query := `UPDATE events SET title = $1, slug = $2, start_date = $3, end_date = $4,
	          description = $5, image = $6, tags = $7 WHERE id = $8`
	if _, err := s.db.Exec(query, e.Title, e.Slug, e.StartDate, e.EndDate,
		e.Description, e.Image, tags, id); err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("updating event '%s'", id))
	}
	return e, nil
}

func (s *PostgresStorage) DeleteEvent(id string) (bool, error) {
	return s.deleteByID("events", id)
}

// --- Games ---

const selectGameFields = "id, league, home_team, away_team, home_abbr, away_abbr, start_time, channel"

func scanGame(row scanner) (*models.Game, error) {
	var g models.Game
	var channel sql.NullString
	err := row.Scan(&g.ID, &g.League, &g.HomeTeam, &g.AwayTeam, &g.HomeAbbr, &g.AwayAbbr,
		&g.StartTime, &channel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning game: %v", ErrDatabaseError, err)
	}
	if channel.Valid {
		g.Channel = &channel.String
	}
	return &g, nil
}

func (s *PostgresStorage) queryGames(query string, args ...interface{}) ([]models.Game, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying games: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating games: %v", ErrDatabaseError, err)
	}
	return games, nil
}

func (s *PostgresStorage) GetGames() ([]models.Game, error) {
	return s.queryGames("SELECT " + selectGameFields + " FROM games ORDER BY start_time")
}

// GetTodaysGames matches the half-open window [start of local day, start of
// next local day) with a real timestamp comparison.
func (s *PostgresStorage) GetTodaysGames() ([]models.Game, error) {
	startOfDay, endOfDay := models.DayWindow(time.Now())
	query := "SELECT " + selectGameFields + ` FROM games
	          WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time`
	return s.queryGames(query, startOfDay, endOfDay)
}

func (s *PostgresStorage) GetUpcomingGames() ([]models.Game, error) {
	query := "SELECT " + selectGameFields + " FROM games WHERE start_time >= $1 ORDER BY start_time"
	return s.queryGames(query, time.Now())
}

func (s *PostgresStorage) GetGame(id string) (*models.Game, error) {
	query := "SELECT " + selectGameFields + " FROM games WHERE id = $1"
	return scanGame(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) insertGame(game models.Game, conflictTolerant bool) (int64, error) {
	query := `INSERT INTO games (id, league, home_team, away_team, home_abbr, away_abbr, start_time, channel)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	}
	result, err := s.db.Exec(query, game.ID, game.League, game.HomeTeam, game.AwayTeam,
		game.HomeAbbr, game.AwayAbbr, game.StartTime, game.Channel)
	if err != nil {
		return 0, mapInsertErr(err, fmt.Sprintf("creating game '%s'", game.ID))
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) CreateGame(game models.Game) (*models.Game, error) {
	if _, err := s.insertGame(game, false); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *PostgresStorage) UpdateGame(id string, patch models.GamePatch) (*models.Game, error) {
	g, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}
	if patch.League != nil {
		g.League = *patch.League
	}
	if patch.HomeTeam != nil {
		g.HomeTeam = *patch.HomeTeam
	}
	if patch.AwayTeam != nil {
		g.AwayTeam = *patch.AwayTeam
	}
	if patch.HomeAbbr != nil {
		g.HomeAbbr = *patch.HomeAbbr
	}
	if patch.AwayAbbr != nil {
		g.AwayAbbr = *patch.AwayAbbr
	}
	if patch.StartTime != nil {
		g.StartTime = *patch.StartTime
	}
	if patch.Channel != nil {
		g.Channel = patch.Channel
	}
	query := `UPDATE games SET league = $1, home_team = $2, away_team = $3, home_abbr = $4,
	          away_abbr = $5, start_time = $6, channel = $7 WHERE id = $8`
	if _, err := s.db.Exec(query, g.League, g.HomeTeam, g.AwayTeam, g.HomeAbbr, g.AwayAbbr,
		g.StartTime, g.Channel, id); err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("updating game '%s'", id))
	}
	return g, nil
}

func (s *PostgresStorage) DeleteGame(id string) (bool, error) {
	return s.deleteByID("games", id)
}

// --- Reservations ---

const selectReservationFields = "id, name, email, phone, party_size, date, time, special_requests, status, created_at"

func scanReservation(row scanner) (*models.Reservation, error) {
	var r models.Reservation
	var specialRequests sql.NullString
	err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.PartySize, &r.Date, &r.Time,
		&specialRequests, &r.Status, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning reservation: %v", ErrDatabaseError, err)
	}
	if specialRequests.Valid {
		r.SpecialRequests = &specialRequests.String
	}
	return &r, nil
}

func (s *PostgresStorage) GetReservations() ([]models.Reservation, error) {
	query := "SELECT " + selectReservationFields + " FROM reservations ORDER BY created_at"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reservations: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reservations: %v", ErrDatabaseError, err)
	}
	return reservations, nil
}

func (s *PostgresStorage) GetReservation(id string) (*models.Reservation, error) {
	query := "SELECT " + selectReservationFields + " FROM reservations WHERE id = $1"
	return scanReservation(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) CreateReservation(reservation models.InsertReservation) (*models.Reservation, error) {
	r := models.Reservation{
		ID:              uuid.NewString(),
		Name:            reservation.Name,
		Email:           reservation.Email,
		Phone:           reservation.Phone,
		PartySize:       reservation.PartySize,
		Date:            reservation.Date,
		Time:            reservation.Time,
		SpecialRequests: reservation.SpecialRequests,
		Status:          models.ReservationStatusPending,
		CreatedAt:       time.Now(),
	}
	query := `INSERT INTO reservations (id, name, email, phone, party_size, date, time, special_requests, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.db.Exec(query, r.ID, r.Name, r.Email, r.Phone, r.PartySize, r.Date, r.Time,
		r.SpecialRequests, r.Status, r.CreatedAt)
	if err != nil {
		return nil, mapInsertErr(err, "creating reservation")
	}
	return &r, nil
}

func (s *PostgresStorage) UpdateReservation(id string, patch models.ReservationPatch) (*models.Reservation, error) {
	r, err := s.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.SpecialRequests != nil {
		r.SpecialRequests = patch.SpecialRequests
	}
	query := `UPDATE reservations SET status = $1, special_requests = $2 WHERE id = $3`
	if _, err := s.db.Exec(query, r.Status, r.SpecialRequests, id); err != nil {
		return nil, fmt.Errorf("%w: updating reservation '%s': %v", ErrDatabaseError, id, err)
	}
	return r, nil
}

func (s *PostgresStorage) DeleteReservation(id string) (bool, error) {
	return s.deleteByID("reservations", id)
}

// --- Singletons ---
//
// Each singleton is exactly one row addressed by the fixed id "main",
// migrated from fixtures like any other entity. Reads of a missing row return
// the default shape so pages that render on every route never fail.

func (s *PostgresStorage) GetSettings() (*models.SiteSettings, error) {
	query := `SELECT id, name, address, phone, email, hours, socials, hero, footer
	          FROM settings WHERE id = $1`
	var settings models.SiteSettings
	var hours, socials, hero, footer []byte
	err := s.db.QueryRow(query, models.SingletonID).Scan(&settings.ID, &settings.Name,
		&settings.Address, &settings.Phone, &settings.Email, &hours, &socials, &hero, &footer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("%w: getting settings: %v", ErrDatabaseError, err)
	}
	if err := fromJSONB(hours, &settings.Hours); err != nil {
		return nil, err
	}
	if err := fromJSONB(socials, &settings.Socials); err != nil {
		return nil, err
	}
	if err := fromJSONB(hero, &settings.Hero); err != nil {
		return nil, err
	}
	if err := fromJSONB(footer, &settings.Footer); err != nil {
		return nil, err
	}
	if settings.Hours == nil {
		settings.Hours = []models.OpeningHours{}
	}
	if settings.Footer.Links == nil {
		settings.Footer.Links = []models.FooterLink{}
	}
	return &settings, nil
}

func (s *PostgresStorage) upsertSettings(settings models.SiteSettings, conflictTolerant bool) (int64, error) {
	settings.ID = models.SingletonID
	hours, err := jsonbArg(settings.Hours)
	if err != nil {
		return 0, err
	}
	socials, err := jsonbArg(settings.Socials)
	if err != nil {
		return 0, err
	}
	hero, err := jsonbArg(settings.Hero)
	if err != nil {
		return 0, err
	}
	footer, err := jsonbArg(settings.Footer)
	if err != nil {
		return 0, err
	}
	query := `INSERT INTO settings (id, name, address, phone, email, hours, socials, hero, footer)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	} else {
		query += ` ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address,
		           phone = EXCLUDED.phone, email = EXCLUDED.email, hours = EXCLUDED.hours,
		           socials = EXCLUDED.socials, hero = EXCLUDED.hero, footer = EXCLUDED.footer`
	}
	result, err := s.db.Exec(query, settings.ID, settings.Name, settings.Address,
		settings.Phone, settings.Email, hours, socials, hero, footer)
	if err != nil {
		return 0, mapInsertErr(err, "upserting settings")
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) UpdateSettings(settings models.SiteSettings) (*models.SiteSettings, error) {
	if _, err := s.upsertSettings(settings, false); err != nil {
		return nil, err
	}
	return s.GetSettings()
}

func (s *PostgresStorage) GetPromotionsData() (*models.Promotions, error) {
	query := `SELECT id, landing, side_banner, happy_hour FROM promotions WHERE id = $1`
	var promotions models.Promotions
	var landing, sideBanner, happyHour []byte
	err := s.db.QueryRow(query, models.SingletonID).Scan(&promotions.ID, &landing, &sideBanner, &happyHour)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultPromotions(), nil
		}
		return nil, fmt.Errorf("%w: getting promotions: %v", ErrDatabaseError, err)
	}
	if err := fromJSONB(landing, &promotions.Landing); err != nil {
		return nil, err
	}
	if err := fromJSONB(sideBanner, &promotions.SideBanner); err != nil {
		return nil, err
	}
	if err := fromJSONB(happyHour, &promotions.HappyHour); err != nil {
		return nil, err
	}
	if promotions.HappyHour.Offers == nil {
		promotions.HappyHour.Offers = []models.HappyHourOffer{}
	}
	return &promotions, nil
}

func (s *PostgresStorage) upsertPromotions(promotions models.Promotions, conflictTolerant bool) (int64, error) {
	promotions.ID = models.SingletonID
	landing, err := jsonbArg(promotions.Landing)
	if err != nil {
		return 0, err
	}
	sideBanner, err := jsonbArg(promotions.SideBanner)
	if err != nil {
		return 0, err
	}
	happyHour, err := jsonbArg(promotions.HappyHour)
	if err != nil {
		return 0, err
	}
	query := `INSERT INTO promotions (id, landing, side_banner, happy_hour) VALUES ($1, $2, $3, $4)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	} else {
		query += ` ON CONFLICT (id) DO UPDATE SET landing = EXCLUDED.landing,
		           side_banner = EXCLUDED.side_banner, happy_hour = EXCLUDED.happy_hour`
	}
	result, err := s.db.Exec(query, promotions.ID, landing, sideBanner, happyHour)
	if err != nil {
		return 0, mapInsertErr(err, "upserting promotions")
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) UpdatePromotions(promotions models.Promotions) (*models.Promotions, error) {
	if _, err := s.upsertPromotions(promotions, false); err != nil {
		return nil, err
	}
	return s.GetPromotionsData()
}

func (s *PostgresStorage) GetLandingData() (*models.LandingContent, error) {
	query := `SELECT id, popup, hero, features, special_offer FROM landing WHERE id = $1`
	var landing models.LandingContent
	var popup, hero, features, specialOffer []byte
	err := s.db.QueryRow(query, models.SingletonID).Scan(&landing.ID, &popup, &hero, &features, &specialOffer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultLandingContent(), nil
		}
		return nil, fmt.Errorf("%w: getting landing content: %v", ErrDatabaseError, err)
	}
	if err := fromJSONB(popup, &landing.Popup); err != nil {
		return nil, err
	}
	if err := fromJSONB(hero, &landing.Hero); err != nil {
		return nil, err
	}
	if err := fromJSONB(features, &landing.Features); err != nil {
		return nil, err
	}
	if err := fromJSONB(specialOffer, &landing.SpecialOffer); err != nil {
		return nil, err
	}
	if landing.Features == nil {
		landing.Features = []models.LandingFeature{}
	}
	return &landing, nil
}

func (s *PostgresStorage) upsertLanding(landing models.LandingContent, conflictTolerant bool) (int64, error) {
	landing.ID = models.SingletonID
	popup, err := jsonbArg(landing.Popup)
	if err != nil {
		return 0, err
	}
	hero, err := jsonbArg(landing.Hero)
	if err != nil {
		return 0, err
	}
	features, err := jsonbArg(landing.Features)
	if err != nil {
		return 0, err
	}
	specialOffer, err := jsonbArg(landing.SpecialOffer)
	if err != nil {
		return 0, err
	}
	query := `INSERT INTO landing (id, popup, hero, features, special_offer) VALUES ($1, $2, $3, $4, $5)`
	if conflictTolerant {
		query += " ON CONFLICT (id) DO NOTHING"
	} else {
		query += ` ON CONFLICT (id) DO UPDATE SET popup = EXCLUDED.popup, hero = EXCLUDED.hero,
		           features = EXCLUDED.features, special_offer = EXCLUDED.special_offer`
	}
	result, err := s.db.Exec(query, landing.ID, popup, hero, features, specialOffer)
	if err != nil {
		return 0, mapInsertErr(err, "upserting landing content")
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (s *PostgresStorage) UpdateLanding(landing models.LandingContent) (*models.LandingContent, error) {
	if _, err := s.upsertLanding(landing, false); err != nil {
		return nil, err
	}
	return s.GetLandingData()
}

// --- Users ---

const selectUserFields = "id, username, password, email, created_at"

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
	}
	return &u, nil
}

func (s *PostgresStorage) GetUserByUsername(username string) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE username = $1"
	return scanUser(s.db.QueryRow(query, username))
}

func (s *PostgresStorage) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE id = $1"
	return scanUser(s.db.QueryRow(query, id))
}

func (s *PostgresStorage) CreateUser(user models.InsertUser, passwordHash string) (*models.User, error) {
	u := models.User{
		Username: user.Username,
		Password: passwordHash,
		Email:    user.Email,
	}
	query := `INSERT INTO users (username, password, email, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	u.CreatedAt = time.Now()
	err := s.db.QueryRow(query, u.Username, u.Password, u.Email, u.CreatedAt).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, mapInsertErr(err, fmt.Sprintf("creating user '%s'", user.Username))
	}
	return &u, nil
}

// --- Seeding (conflict-tolerant inserts driven by the Migrator) ---

func outcomeFromRows(rowsAffected int64) SeedOutcome {
	if rowsAffected > 0 {
		return SeedInserted
	}
	return SeedSkipped
}

func (s *PostgresStorage) SeedCompleted(entity string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM seed_migrations WHERE entity = $1", entity).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: checking seed state for %s: %v", ErrDatabaseError, entity, err)
	}
	return count > 0, nil
}

func (s *PostgresStorage) MarkSeedCompleted(entity string) error {
	query := `INSERT INTO seed_migrations (entity, completed_at) VALUES ($1, $2)
	          ON CONFLICT (entity) DO NOTHING`
	if _, err := s.db.Exec(query, entity, time.Now()); err != nil {
		return fmt.Errorf("%w: marking seed complete for %s: %v", ErrDatabaseError, entity, err)
	}
	return nil
}

func (s *PostgresStorage) SeedMenuCategory(category models.MenuCategory) (SeedOutcome, error) {
	query := `INSERT INTO menu_categories (id, name, slug, display_order)
	          VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
	result, err := s.db.Exec(query, category.ID, category.Name, category.Slug, category.DisplayOrder)
	if err != nil {
		return SeedSkipped, mapInsertErr(err, fmt.Sprintf("seeding menu category '%s'", category.ID))
	}
	rowsAffected, _ := result.RowsAffected()
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedMenuItem(item models.MenuItem) (SeedOutcome, error) {
	rowsAffected, err := s.insertMenuItem(item, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedEvent(event models.Event) (SeedOutcome, error) {
	rowsAffected, err := s.insertEvent(event, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedGame(game models.Game) (SeedOutcome, error) {
	rowsAffected, err := s.insertGame(game, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedSettings(settings models.SiteSettings) (SeedOutcome, error) {
	rowsAffected, err := s.upsertSettings(settings, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedPromotions(promotions models.Promotions) (SeedOutcome, error) {
	rowsAffected, err := s.upsertPromotions(promotions, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}

func (s *PostgresStorage) SeedLanding(landing models.LandingContent) (SeedOutcome, error) {
	rowsAffected, err := s.upsertLanding(landing, true)
	if err != nil {
		return SeedSkipped, err
	}
	return outcomeFromRows(rowsAffected), nil
}
