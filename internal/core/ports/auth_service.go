package ports

import (
	"context"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

type AuthService interface {
	// Register creates a guest identity and returns its credential.
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// EnsureAdmin seeds the bootstrap admin if it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}
