package models

import "time"

// Game represents a televised match on the bar's schedule.
type Game struct {
	ID        string    `json:"id" binding:"required"`
	League    string    `json:"league" binding:"required"`
	HomeTeam  string    `json:"homeTeam" binding:"required"`
	AwayTeam  string    `json:"awayTeam" binding:"required"`
	HomeAbbr  string    `json:"homeAbbr" binding:"required"`
	AwayAbbr  string    `json:"awayAbbr" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	Channel   *string   `json:"channel,omitempty"`
}

// GamePatch is a partial update; nil fields are left unchanged.
type GamePatch struct {
	League    *string    `json:"league,omitempty"`
	HomeTeam  *string    `json:"homeTeam,omitempty"`
	AwayTeam  *string    `json:"awayTeam,omitempty"`
	HomeAbbr  *string    `json:"homeAbbr,omitempty"`
	AwayAbbr  *string    `json:"awayAbbr,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	Channel   *string    `json:"channel,omitempty"`
}

// DayWindow returns the half-open range [start of t's local day, start of the
// next local day). Both adapters use this single definition of "today".
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
