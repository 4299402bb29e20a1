package ports

import (
	"context"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// ReservationRepository defines persistence for the reservation ledger.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	// FindOwnedByUser retrieves a reservation only when it belongs to userID.
	FindOwnedByUser(ctx context.Context, id, userID string) (*domain.Reservation, error)
	// FindByUserAndRoom retrieves any reservation userID holds on roomID.
	FindByUserAndRoom(ctx context.Context, userID, roomID string) (*domain.Reservation, error)
	// SetRating records the rating and review on an existing reservation.
	SetRating(ctx context.Context, id string, rating int, review string) error
}
