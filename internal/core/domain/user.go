package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")

// User models an authenticated actor. IsAdmin is set only for the bootstrap
// admin seeded at startup; registration always creates guests.
type User struct {
	ID           string               `json:"id"`
	Username     string               `json:"username"`
	PasswordHash string               `json:"-"`
	IsAdmin      bool                 `json:"is_admin"`
	Reservations []ReservationSummary `json:"reservations,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ReservationSummary is the denormalized copy of a reservation kept on the
// user document. The reservation ledger is authoritative; this is a
// read-cache updated asynchronously and may lag behind.
type ReservationSummary struct {
	RoomID  string `json:"room_id"`
	HotelID string `json:"hotel_id"`
	Rating  *int   `json:"rating,omitempty"`
	Review  string `json:"review,omitempty"`
}
