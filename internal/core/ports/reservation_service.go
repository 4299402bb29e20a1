package ports

import (
	"context"
	"time"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// ReserveInput carries the parameters for reserving a room.
type ReserveInput struct {
	UserID    string
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

// ReservationService defines room reservation and post-stay rating.
type ReservationService interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Reservation, error)
	// RateRoom records a rating/review against a reservation the caller
	// holds on the room. The bool reports whether the rating was applied;
	// a submission skipped as a duplicate returns false with a nil error.
	RateRoom(ctx context.Context, userID, roomID string, rating int, review string) (bool, error)
	// RateReservation records a rating/review resolved through a
	// reservation id owned by the caller. Same applied/skipped contract
	// as RateRoom.
	RateReservation(ctx context.Context, userID, reservationID string, rating int, review string) (bool, error)
}
