package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
	"github.com/spotterhq/spotter-api/internal/core/validation"
)

// WorkoutService turns raw workout input into stored records: validate,
// normalize, assign id and timestamps, persist.
type WorkoutService struct {
	repo   ports.WorkoutRepository
	logger zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, logger zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, logger: logger}
}

func (s *WorkoutService) LogWorkout(ctx context.Context, in ports.LogWorkoutInput, creatorEmail string) (*domain.Workout, error) {
	normalized, errs := validation.Workout(in)
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	if creatorEmail == "" {
		creatorEmail = "Anonymous"
	}

	workout := &domain.Workout{
		ID:          uuid.NewString(),
		WorkoutName: normalized.WorkoutName,
		Date:        normalized.Date,
		Duration:    normalized.Duration,
		WorkoutType: normalized.WorkoutType,
		Intensity:   normalized.Intensity,
		Calories:    normalized.Calories,
		Notes:       normalized.Notes,
		Privacy:     normalized.Privacy,
		Creator:     creatorEmail,
		CreatedAt:   time.Now().UTC(),
		Type:        domain.PostTypeWorkout,
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		s.logger.Error().Err(err).Str("creator", creatorEmail).Msg("failed to save workout")
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveWorkout, err)
	}

	s.logger.Info().Str("workout_id", workout.ID).Str("creator", creatorEmail).Msg("workout logged")
	return workout, nil
}

func (s *WorkoutService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]*domain.Workout, error) {
	return s.repo.List(ctx, ports.WorkoutFilter{})
}
