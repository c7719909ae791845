package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFixtureDir lays out a minimal but complete fixture directory and
// returns its path.
func writeFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"menu.json": `{
			"categories": [
				{"id": "cat-drinks", "name": "Drinks", "slug": "drinks", "displayOrder": 2},
				{"id": "cat-apps", "name": "Appetizers", "slug": "appetizers", "displayOrder": 1}
			],
			"items": [
				{"id": "item-wings", "categoryId": "cat-apps", "name": "Wings", "price": 1395, "badges": ["spicy"], "allergens": ["dairy"]},
				{"id": "item-beer", "categoryId": "cat-drinks", "name": "Draft Beer", "price": 650}
			]
		}`,
		"events.json": `[
			{"id": "event-trivia", "title": "Trivia Night", "slug": "trivia-night",
			 "startDate": "2026-09-01T19:00:00Z", "endDate": "2026-09-01T22:00:00Z", "tags": ["weekly"]},
			{"id": "event-fight", "title": "Fight Night", "slug": "fight-night",
			 "startDate": "2026-08-15T21:00:00Z", "endDate": "2026-08-16T01:00:00Z"}
		]`,
		"games.json": `[
			{"id": "game-1", "league": "NFL", "homeTeam": "Chiefs", "awayTeam": "Bills",
			 "homeAbbr": "KC", "awayAbbr": "BUF", "startTime": "2026-09-06T15:25:00Z", "channel": "CBS"}
		]`,
		"settings.json": `{
			"name": "Test Bar", "address": "1 Test St", "phone": "555-0100", "email": "test@bar.com",
			"hours": [{"day": "Monday", "open": "11:00", "close": "23:00"}],
			"socials": {"instagram": "https://instagram.com/testbar"},
			"hero": {"title": "Welcome"},
			"footer": {"description": "A bar", "links": [], "copyright": "test"}
		}`,
		"promotions.json": `{
			"landing": {"enabled": false},
			"sideBanner": {"enabled": true, "message": "hello"},
			"happyHour": {"enabled": true, "title": "Happy Hour", "offers": [
				{"icon": "beer", "title": "Drafts", "description": "all drafts", "discount": "$2 off"}
			]}
		}`,
		"landing.json": `{
			"popup": {"enabled": true, "duration": 15, "autoRedirect": false, "redirectUrl": "/"},
			"hero": {"title": "Landing"},
			"features": [{"icon": "tv", "title": "Screens", "description": "lots of them"}],
			"specialOffer": {"enabled": false}
		}`,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
