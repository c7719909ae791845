package models

import "time"

// Reservation statuses. A reservation is immutable once created except for
// administrative status transitions.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// IsValidReservationStatus reports whether s is a known reservation status.
func IsValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

// Reservation represents a table reservation request from the public site.
// ID, Status and CreatedAt are server-assigned.
type Reservation struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PartySize       int       `json:"partySize"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertReservation is the client-supplied portion of a reservation.
type InsertReservation struct {
	Name            string    `json:"name" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required"`
	PartySize       int       `json:"partySize" binding:"required,min=1"`
	Date            time.Time `json:"date" binding:"required"`
	Time            string    `json:"time" binding:"required"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
}

// ReservationPatch carries administrative updates, in practice the status.
type ReservationPatch struct {
	Status          *string `json:"status,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}
