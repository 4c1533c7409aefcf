package ports

import (
	"context"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// FeedService merges challenges and workouts into a recency-sorted feed.
type FeedService interface {
	// PublicFeed returns all public challenges and workouts, newest first.
	PublicFeed(ctx context.Context) ([]domain.Activity, error)
	// UserFeed returns everything the user created regardless of privacy.
	UserFeed(ctx context.Context, email string) ([]domain.Activity, error)
}
