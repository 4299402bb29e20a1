package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ratingDedupTTL = 24 * time.Hour

// RatingDedup provides idempotency checks for rating submissions.
// Key format: rated:<user_id>:<room_id>
type RatingDedup struct {
	client *redis.Client
}

// NewRatingDedup creates a RatingDedup wrapping the given Redis client.
func NewRatingDedup(client *redis.Client) *RatingDedup {
	return &RatingDedup{client: client}
}

// IsDuplicate reports whether this user already rated this room within the
// dedup window.
func (d *RatingDedup) IsDuplicate(ctx context.Context, userID, roomID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, roomID)).Result()
	if err != nil {
		return false, fmt.Errorf("rating dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the rating has been applied (expires after the TTL).
func (d *RatingDedup) Mark(ctx context.Context, userID, roomID string) error {
	return d.client.Set(ctx, d.key(userID, roomID), "1", ratingDedupTTL).Err()
}

func (d *RatingDedup) key(userID, roomID string) string {
	return fmt.Sprintf("rated:%s:%s", userID, roomID)
}
