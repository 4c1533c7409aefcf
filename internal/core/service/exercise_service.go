package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
	"github.com/spotterhq/spotter-api/internal/core/validation"
)

// ExerciseService fronts the external AI exercise generator with a cache.
// Selections are validated against the body-part catalog before any generator
// call; generator failures degrade to domain.ErrSuggestionUnavailable.
type ExerciseService struct {
	generator ports.ExerciseGenerator
	cache     ports.ExerciseCache
	logger    zerolog.Logger
}

func NewExerciseService(generator ports.ExerciseGenerator, cache ports.ExerciseCache, logger zerolog.Logger) *ExerciseService {
	return &ExerciseService{generator: generator, cache: cache, logger: logger}
}

func (s *ExerciseService) Exercises(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error) {
	norm, errs := validation.ExerciseSelection(sel)
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	key := exerciseCacheKey(norm)

	if exercises, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("exercise cache read failed")
	} else if ok {
		s.logger.Debug().Str("key", key).Msg("exercise cache hit")
		return exercises, nil
	}

	exercises, err := s.generator.GenerateExercises(ctx, norm)
	if err != nil {
		s.logger.Error().Err(err).Msg("exercise generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrSuggestionUnavailable, err)
	}

	if err := s.cache.Set(ctx, key, exercises); err != nil {
		s.logger.Warn().Err(err).Msg("exercise cache write failed")
	}

	return exercises, nil
}

// MusclesFor returns the muscles selectable for the given body parts, for
// clients building the selection UI.
func (s *ExerciseService) MusclesFor(bodyParts []string) []string {
	return validation.MusclesForBodyParts(bodyParts)
}

// exerciseCacheKey hashes the sorted, lowercased selection so equivalent
// requests share an entry.
func exerciseCacheKey(sel ports.ExerciseSelection) string {
	parts := lowerSorted(sel.BodyParts)
	muscles := lowerSorted(sel.Muscles)
	sum := sha256.Sum256([]byte(strings.Join(parts, ",") + "|" + strings.Join(muscles, ",")))
	return "exercise:" + hex.EncodeToString(sum[:16])
}

func lowerSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	sort.Strings(out)
	return out
}
