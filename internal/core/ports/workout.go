package ports

import (
	"context"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// LogWorkoutInput is the raw client payload for logging a workout. Numeric
// fields arrive as strings and are parsed by the validation engine.
type LogWorkoutInput struct {
	WorkoutName string
	Date        string
	Duration    string
	WorkoutType string
	Intensity   string
	Calories    string
	Notes       string
	Privacy     string
}

// WorkoutFilter narrows workout listings. Zero values mean "no filter".
type WorkoutFilter struct {
	Creator string
	Privacy string
}

// WorkoutRepository persists workouts, listed created_at descending.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	FindByID(ctx context.Context, id string) (*domain.Workout, error)
	List(ctx context.Context, filter WorkoutFilter) ([]*domain.Workout, error)
}

type WorkoutService interface {
	LogWorkout(ctx context.Context, in LogWorkoutInput, creatorEmail string) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context) ([]*domain.Workout, error)
}
