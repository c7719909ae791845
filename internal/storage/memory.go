package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"suponos_backend/internal/models"
	"suponos_backend/pkg/utils"
)

// MemoryStorage backs every entity type with an in-process map. It populates
// itself from the fixture files at construction and falls back to minimal
// hard-coded defaults when fixtures are missing or corrupt, so the process can
// still serve requests in a degraded mode.
//
// Contents are lost on process restart. That is acceptable for its use case
// (local development and database-less fallback) and callers must not rely on
// it for durability.
type MemoryStorage struct {
	mu sync.RWMutex

	menuCategories map[string]models.MenuCategory
	menuItems      map[string]models.MenuItem
	events         map[string]models.Event
	games          map[string]models.Game
	reservations   map[string]models.Reservation
	users          map[int64]models.User
	nextUserID     int64

	settings   *models.SiteSettings
	promotions *models.Promotions
	landing    *models.LandingContent
}

// NewMemoryStorage creates a memory-backed store seeded from the fixture
// directory. Fixture failures are logged and recovered per collection.
func NewMemoryStorage(dataDir string) *MemoryStorage {
	s := &MemoryStorage{
		menuCategories: make(map[string]models.MenuCategory),
		menuItems:      make(map[string]models.MenuItem),
		events:         make(map[string]models.Event),
		games:          make(map[string]models.Game),
		reservations:   make(map[string]models.Reservation),
		users:          make(map[int64]models.User),
		nextUserID:     1,
	}
	s.seed(NewSeedLoader(dataDir))
	return s
}

func (s *MemoryStorage) seed(loader *SeedLoader) {
	if menu, err := loader.LoadMenu(); err != nil {
		utils.LogError(err, "memory storage: menu fixtures unavailable, starting empty")
	} else {
		for _, c := range menu.Categories {
			s.menuCategories[c.ID] = c
		}
		for _, i := range menu.Items {
			s.menuItems[i.ID] = i
		}
	}

	if events, err := loader.LoadEvents(); err != nil {
		utils.LogError(err, "memory storage: event fixtures unavailable, starting empty")
	} else {
		for _, e := range events {
			s.events[e.ID] = e
		}
	}

	if games, err := loader.LoadGames(); err != nil {
		utils.LogError(err, "memory storage: game fixtures unavailable, starting empty")
	} else {
		for _, g := range games {
			s.games[g.ID] = g
		}
	}

	if settings, err := loader.LoadSettings(); err != nil {
		utils.LogError(err, "memory storage: settings fixture unavailable, using defaults")
		s.settings = models.DefaultSettings()
	} else {
		s.settings = settings
	}

	if promotions, err := loader.LoadPromotions(); err != nil {
		utils.LogError(err, "memory storage: promotions fixture unavailable, using defaults")
		s.promotions = models.DefaultPromotions()
	} else {
		s.promotions = promotions
	}

	if landing, err := loader.LoadLanding(); err != nil {
		utils.LogError(err, "memory storage: landing fixture unavailable, using defaults")
		s.landing = models.DefaultLandingContent()
	} else {
		s.landing = landing
	}
}

// --- Menu Categories ---

func (s *MemoryStorage) GetMenuCategories() ([]models.MenuCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]models.MenuCategory, 0, len(s.menuCategories))
	for _, c := range s.menuCategories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
	return categories, nil
}

func (s *MemoryStorage) GetMenuCategory(id string) (*models.MenuCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.menuCategories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStorage) CreateMenuCategory(category models.MenuCategory) (*models.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.menuCategories[category.ID]; exists {
		return nil, fmt.Errorf("%w: menu category id '%s'", ErrDuplicateKey, category.ID)
	}
	for _, c := range s.menuCategories {
		if c.Slug == category.Slug {
			return nil, fmt.Errorf("%w: menu category slug '%s'", ErrDuplicateKey, category.Slug)
		}
	}
	s.menuCategories[category.ID] = category
	return &category, nil
}

func (s *MemoryStorage) UpdateMenuCategory(id string, patch models.MenuCategoryPatch) (*models.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.menuCategories[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Slug != nil && *patch.Slug != c.Slug {
		for otherID, other := range s.menuCategories {
			if otherID != id && other.Slug == *patch.Slug {
				return nil, fmt.Errorf("%w: menu category slug '%s'", ErrDuplicateKey, *patch.Slug)
			}
		}
		c.Slug = *patch.Slug
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.DisplayOrder != nil {
		c.DisplayOrder = *patch.DisplayOrder
	}
	s.menuCategories[id] = c
	return &c, nil
}

func (s *MemoryStorage) DeleteMenuCategory(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menuCategories[id]; !ok {
		return false, nil
	}
	delete(s.menuCategories, id)
	return true, nil
}

// --- Menu Items ---

func (s *MemoryStorage) GetMenuItems() ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.MenuItem, 0, len(s.menuItems))
	for _, i := range s.menuItems {
		items = append(items, i)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *MemoryStorage) GetMenuItemsByCategory(categoryID string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.MenuItem{}
	for _, i := range s.menuItems {
		if i.CategoryID == categoryID {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *MemoryStorage) GetMenuItem(id string) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &i, nil
}

func (s *MemoryStorage) CreateMenuItem(item models.MenuItem) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.menuItems[item.ID]; exists {
		return nil, fmt.Errorf("%w: menu item id '%s'", ErrDuplicateKey, item.ID)
	}
	item.Badges = models.NormalizeLabels(item.Badges)
	item.Allergens = models.NormalizeLabels(item.Allergens)
	s.menuItems[item.ID] = item
	return &item, nil
}

func (s *MemoryStorage) UpdateMenuItem(id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
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
	s.menuItems[id] = i
	return &i, nil
}

func (s *MemoryStorage) DeleteMenuItem(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menuItems[id]; !ok {
		return false, nil
	}
	delete(s.menuItems, id)
	return true, nil
}

// --- Events ---

func (s *MemoryStorage) GetEvents() ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartDate.Before(events[j].StartDate) })
	return events, nil
}

func (s *MemoryStorage) GetEvent(id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStorage) GetEventBySlug(slug string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.Slug == slug {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateEvent(event models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[event.ID]; exists {
		return nil, fmt.Errorf("%w: event id '%s'", ErrDuplicateKey, event.ID)
	}
	for _, e := range s.events {
		if e.Slug == event.Slug {
			return nil, fmt.Errorf("%w: event slug '%s'", ErrDuplicateKey, event.Slug)
		}
	}
	event.Tags = models.NormalizeLabels(event.Tags)
	s.events[event.ID] = event
	return &event, nil
}

func (s *MemoryStorage) UpdateEvent(id string, patch models.EventPatch) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Slug != nil && *patch.Slug != e.Slug {
		for otherID, other := range s.events {
			if otherID != id && other.Slug == *patch.Slug {
				return nil, fmt.Errorf("%w: event slug '%s'", ErrDuplicateKey, *patch.Slug)
			}
		}
		e.Slug = *patch.Slug
	}
	if patch.Title != nil {
		e.Title = *patch.Title
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
	s.events[id] = e
	return &e, nil
}

func (s *MemoryStorage) DeleteEvent(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return false, nil
	}
	delete(s.events, id)
	return true, nil
}

// --- Games ---

func (s *MemoryStorage) GetGames() ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedGames(func(models.Game) bool { return true }), nil
}

func (s *MemoryStorage) GetTodaysGames() ([]models.Game, error) {
	startOfDay, endOfDay := models.DayWindow(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedGames(func(g models.Game) bool {
		return !g.StartTime.Before(startOfDay) && g.StartTime.Before(endOfDay)
	}), nil
}

func (s *MemoryStorage) GetUpcomingGames() ([]models.Game, error) {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedGames(func(g models.Game) bool {
		return !g.StartTime.Before(now)
	}), nil
}

// sortedGames must be called with the lock held.
func (s *MemoryStorage) sortedGames(keep func(models.Game) bool) []models.Game {
	games := []models.Game{}
	for _, g := range s.games {
		if keep(g) {
			games = append(games, g)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].StartTime.Before(games[j].StartTime) })
	return games
}

func (s *MemoryStorage) GetGame(id string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (s *MemoryStorage) CreateGame(game models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.games[game.ID]; exists {
		return nil, fmt.Errorf("%w: game id '%s'", ErrDuplicateKey, game.ID)
	}
	s.games[game.ID] = game
	return &game, nil
}

func (s *MemoryStorage) UpdateGame(id string, patch models.GamePatch) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
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
	s.games[id] = g
	return &g, nil
}

func (s *MemoryStorage) DeleteGame(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return false, nil
	}
	delete(s.games, id)
	return true, nil
}

// --- Reservations ---

func (s *MemoryStorage) GetReservations() ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservations := make([]models.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		reservations = append(reservations, r)
	}
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.Before(reservations[j].CreatedAt)
	})
	return reservations, nil
}

func (s *MemoryStorage) GetReservation(id string) (*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryStorage) CreateReservation(reservation models.InsertReservation) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	s.reservations[r.ID] = r
	return &r, nil
}

func (s *MemoryStorage) UpdateReservation(id string, patch models.ReservationPatch) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.SpecialRequests != nil {
		r.SpecialRequests = patch.SpecialRequests
	}
	s.reservations[id] = r
	return &r, nil
}

func (s *MemoryStorage) DeleteReservation(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return false, nil
	}
	delete(s.reservations, id)
	return true, nil
}

// --- Singletons ---

func (s *MemoryStorage) GetSettings() (*models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return models.DefaultSettings(), nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *MemoryStorage) UpdateSettings(settings models.SiteSettings) (*models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.ID = models.SingletonID
	if settings.Hours == nil {
		settings.Hours = []models.OpeningHours{}
	}
	if settings.Footer.Links == nil {
		settings.Footer.Links = []models.FooterLink{}
	}
	s.settings = &settings
	return &settings, nil
}

func (s *MemoryStorage) GetPromotionsData() (*models.Promotions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.promotions == nil {
		return models.DefaultPromotions(), nil
	}
	promotions := *s.promotions
	return &promotions, nil
}

func (s *MemoryStorage) UpdatePromotions(promotions models.Promotions) (*models.Promotions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promotions.ID = models.SingletonID
	if promotions.HappyHour.Offers == nil {
		promotions.HappyHour.Offers = []models.HappyHourOffer{}
	}
	s.promotions = &promotions
	return &promotions, nil
}

func (s *MemoryStorage) GetLandingData() (*models.LandingContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.landing == nil {
		return models.DefaultLandingContent(), nil
	}
	landing := *s.landing
	return &landing, nil
}

func (s *MemoryStorage) UpdateLanding(landing models.LandingContent) (*models.LandingContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	landing.ID = models.SingletonID
	if landing.Features == nil {
		landing.Features = []models.LandingFeature{}
	}
	s.landing = &landing
	return &landing, nil
}

// --- Users ---

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetUserByID(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStorage) CreateUser(user models.InsertUser, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("%w: username '%s'", ErrDuplicateKey, user.Username)
		}
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: email '%s'", ErrDuplicateKey, user.Email)
		}
	}
	u := models.User{
		ID:        s.nextUserID,
		Username:  user.Username,
		Password:  passwordHash,
		Email:     user.Email,
		CreatedAt: time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}
