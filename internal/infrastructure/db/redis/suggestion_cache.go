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

const suggestionTTL = 6 * time.Hour

// SuggestionCache stores generated recipe plans in Redis so identical
// preference sets don't hit the AI endpoint twice within the TTL.
type SuggestionCache struct {
	client *redis.Client
}

func NewSuggestionCache(client *redis.Client) *SuggestionCache {
	return &SuggestionCache{client: client}
}

func (c *SuggestionCache) Get(ctx context.Context, key string) (*ports.RecipePlan, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("suggestion cache get: %w", err)
	}

	var plan ports.RecipePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		// A corrupt entry behaves like a miss.
		return nil, false, nil
	}
	return &plan, true, nil
}

func (c *SuggestionCache) Set(ctx context.Context, key string, plan *ports.RecipePlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("suggestion cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, suggestionTTL).Err(); err != nil {
		return fmt.Errorf("suggestion cache set: %w", err)
	}
	return nil
}
