package ports

import (
	"context"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// UserRepository defines persistence for the identity store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// AppendReservationSummary pushes a denormalized reservation summary
	// onto the user document. Best-effort cache write.
	AppendReservationSummary(ctx context.Context, userID string, summary domain.ReservationSummary) error
	// SetSummaryRating records rating/review on the matching room summary.
	SetSummaryRating(ctx context.Context, userID, roomID string, rating int, review string) error
}
