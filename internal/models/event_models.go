package models

import "time"

// Event represents a promoted happening at the bar (watch party, live music).
// Slug is unique across events and used for public URLs.
type Event struct {
	ID          string    `json:"id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Slug        string    `json:"slug" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Tags        []string  `json:"tags"`
}

// EventPatch is a partial update; nil fields are left unchanged.
type EventPatch struct {
	Title       *string    `json:"title,omitempty"`
	Slug        *string    `json:"slug,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}
