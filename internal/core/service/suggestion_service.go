package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// SuggestionService fronts the external AI recipe generator with a cache.
// Identical preferences replay the cached plan; generator failures degrade to
// domain.ErrSuggestionUnavailable.
type SuggestionService struct {
	generator ports.RecipeGenerator
	cache     ports.SuggestionCache
	logger    zerolog.Logger
}

func NewSuggestionService(generator ports.RecipeGenerator, cache ports.SuggestionCache, logger zerolog.Logger) *SuggestionService {
	return &SuggestionService{generator: generator, cache: cache, logger: logger}
}

func (s *SuggestionService) DayPlan(ctx context.Context, prefs ports.RecipePreferences) (*ports.RecipePlan, error) {
	key := cacheKey(prefs)

	if plan, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("suggestion cache read failed")
	} else if ok {
		s.logger.Debug().Str("key", key).Msg("suggestion cache hit")
		return plan, nil
	}

	plan, err := s.generator.GenerateDayPlan(ctx, prefs)
	if err != nil {
		s.logger.Error().Err(err).Msg("recipe generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrSuggestionUnavailable, err)
	}

	if err := s.cache.Set(ctx, key, plan); err != nil {
		s.logger.Warn().Err(err).Msg("suggestion cache write failed")
	}

	return plan, nil
}

// cacheKey hashes the normalized preferences so equivalent requests share an
// entry.
func cacheKey(prefs ports.RecipePreferences) string {
	fields := []string{
		strings.ToLower(strings.TrimSpace(prefs.Goal)),
		strings.ToLower(strings.TrimSpace(prefs.Diet)),
		strings.TrimSpace(prefs.CalorieTarget),
		strings.ToLower(strings.TrimSpace(prefs.CookingTime)),
		strings.ToLower(strings.TrimSpace(prefs.Ingredients)),
		strings.ToLower(strings.TrimSpace(prefs.Allergies)),
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return "recipe:" + hex.EncodeToString(sum[:16])
}
