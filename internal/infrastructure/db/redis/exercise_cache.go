package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const exerciseTTL = 6 * time.Hour

// ExerciseCache stores generated exercise lists in Redis so identical
// selections don't hit the AI endpoint twice within the TTL.
type ExerciseCache struct {
	client *redis.Client
}

func NewExerciseCache(client *redis.Client) *ExerciseCache {
	return &ExerciseCache{client: client}
}

func (c *ExerciseCache) Get(ctx context.Context, key string) ([]ports.Exercise, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("exercise cache get: %w", err)
	}

	var exercises []ports.Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		// A corrupt entry behaves like a miss.
		return nil, false, nil
	}
	return exercises, true, nil
}

func (c *ExerciseCache) Set(ctx context.Context, key string, exercises []ports.Exercise) error {
	raw, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("exercise cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, exerciseTTL).Err(); err != nil {
		return fmt.Errorf("exercise cache set: %w", err)
	}
	return nil
}
