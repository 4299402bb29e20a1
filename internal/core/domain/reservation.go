package domain

import (
	"errors"
	"time"
)

var ErrRoomUnavailable = errors.New("room is not available for reservation")
var ErrReservationNotFound = errors.New("reservation not found")
var ErrNotReserved = errors.New("user has not reserved this room")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Reservation links a user, a room, and a stay interval. HotelName is
// denormalized at creation. Immutable afterwards except for the rating and
// review fields set by a later rate-review call.
type Reservation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	HotelName string    `json:"hotel_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Rating    *int      `json:"rating,omitempty"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
