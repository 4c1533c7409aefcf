package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

type stubWorkoutRepo struct {
	byID      map[string]*domain.Workout
	order     []string
	createErr error
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{byID: make(map[string]*domain.Workout)}
}

func (r *stubWorkoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *workout
	r.byID[workout.ID] = &clone
	r.order = append(r.order, workout.ID)
	return nil
}

func (r *stubWorkoutRepo) FindByID(_ context.Context, id string) (*domain.Workout, error) {
	workout, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	clone := *workout
	return &clone, nil
}

func (r *stubWorkoutRepo) List(_ context.Context, filter ports.WorkoutFilter) ([]*domain.Workout, error) {
	var out []*domain.Workout
	// Newest first, like the real repository.
	for i := len(r.order) - 1; i >= 0; i-- {
		w := r.byID[r.order[i]]
		if filter.Creator != "" && w.Creator != filter.Creator {
			continue
		}
		if filter.Privacy != "" && w.Privacy != filter.Privacy {
			continue
		}
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func validLogWorkoutInput() ports.LogWorkoutInput {
	return ports.LogWorkoutInput{
		WorkoutName: "Leg Day",
		Date:        "2026-09-01",
		Duration:    "60",
		WorkoutType: "strength",
		Intensity:   "medium",
		Notes:       "Squats and lunges",
		Privacy:     "public",
	}
}

func TestLogWorkout_Success(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())

	workout, err := svc.LogWorkout(context.Background(), validLogWorkoutInput(), "alice@bu.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workout.ID == "" {
		t.Error("expected generated id")
	}
	if workout.Creator != "alice@bu.edu" {
		t.Errorf("expected creator set, got %q", workout.Creator)
	}
	if workout.Type != domain.PostTypeWorkout {
		t.Errorf("expected type tag %q, got %q", domain.PostTypeWorkout, workout.Type)
	}
	if workout.CreatedAt.IsZero() {
		t.Error("expected created_at set")
	}
	if _, ok := repo.byID[workout.ID]; !ok {
		t.Error("workout not stored")
	}
}

func TestLogWorkout_AnonymousCreator(t *testing.T) {
	svc := NewWorkoutService(newStubWorkoutRepo(), zerolog.Nop())

	workout, err := svc.LogWorkout(context.Background(), validLogWorkoutInput(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workout.Creator != "Anonymous" {
		t.Errorf("expected Anonymous creator, got %q", workout.Creator)
	}
}

func TestLogWorkout_ValidationFailureReportsEverything(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())

	_, err := svc.LogWorkout(context.Background(), ports.LogWorkoutInput{}, "alice@bu.edu")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 7 {
		t.Errorf("expected 7 accumulated errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing should be stored on validation failure")
	}
}

func TestLogWorkout_StorageFailure(t *testing.T) {
	repo := newStubWorkoutRepo()
	repo.createErr = errors.New("connection reset")
	svc := NewWorkoutService(repo, zerolog.Nop())

	_, err := svc.LogWorkout(context.Background(), validLogWorkoutInput(), "alice@bu.edu")
	if !errors.Is(err, domain.ErrSaveWorkout) {
		t.Fatalf("expected ErrSaveWorkout, got %v", err)
	}
}

func TestGetWorkout_NotFound(t *testing.T) {
	svc := NewWorkoutService(newStubWorkoutRepo(), zerolog.Nop())
	if _, err := svc.GetWorkout(context.Background(), "missing"); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}
