package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

type stubSuggestionService struct {
	planFn func(ctx context.Context, prefs ports.RecipePreferences) (*ports.RecipePlan, error)
}

func (s *stubSuggestionService) DayPlan(ctx context.Context, prefs ports.RecipePreferences) (*ports.RecipePlan, error) {
	return s.planFn(ctx, prefs)
}

type stubExerciseService struct {
	exercisesFn func(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error)
	musclesFn   func(bodyParts []string) []string
}

func (s *stubExerciseService) Exercises(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error) {
	return s.exercisesFn(ctx, sel)
}

func (s *stubExerciseService) MusclesFor(bodyParts []string) []string {
	return s.musclesFn(bodyParts)
}

func TestSuggestionHandler_Plan_Success(t *testing.T) {
	recipes := &stubSuggestionService{
		planFn: func(ctx context.Context, prefs ports.RecipePreferences) (*ports.RecipePlan, error) {
			if prefs.Goal != "bulking" {
				t.Fatalf("unexpected goal: %q", prefs.Goal)
			}
			return &ports.RecipePlan{Meals: []ports.Recipe{{Name: "Chicken bowl", Calories: 700}}, TotalCalories: 700}, nil
		},
	}
	h := NewSuggestionHandler(recipes, &stubExerciseService{})

	c, rec := newJSONContext(t, http.MethodPost, "/api/recipe-plan", `{"goal":"bulking"}`)
	if err := h.Plan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSuggestionHandler_Exercises_Success(t *testing.T) {
	var gotSel ports.ExerciseSelection
	exercises := &stubExerciseService{
		exercisesFn: func(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error) {
			gotSel = sel
			return []ports.Exercise{{Name: "Barbell Curl", PrimaryMuscle: "Biceps"}}, nil
		},
	}
	h := NewSuggestionHandler(&stubSuggestionService{}, exercises)

	body := `{"body_parts":["Arms"],"muscles":["Biceps"]}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/exercise-plan", body)
	if err := h.Exercises(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(gotSel.BodyParts) != 1 || gotSel.BodyParts[0] != "Arms" {
		t.Fatalf("unexpected selection forwarded: %+v", gotSel)
	}

	var resp exercisePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Exercises) != 1 || resp.Exercises[0].Name != "Barbell Curl" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSuggestionHandler_Exercises_ValidationErrorsSurface(t *testing.T) {
	exercises := &stubExerciseService{
		exercisesFn: func(ctx context.Context, sel ports.ExerciseSelection) ([]ports.Exercise, error) {
			return nil, domain.NewValidationError([]string{"At least one body part must be selected"})
		},
	}
	h := NewSuggestionHandler(&stubSuggestionService{}, exercises)

	c, _ := newJSONContext(t, http.MethodPost, "/api/exercise-plan", `{}`)
	err := h.Exercises(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError to surface, got %v", err)
	}
}

func TestSuggestionHandler_ExerciseOptions(t *testing.T) {
	exercises := &stubExerciseService{
		musclesFn: func(bodyParts []string) []string {
			if len(bodyParts) != 2 || bodyParts[0] != "Arms" || bodyParts[1] != "Legs" {
				t.Fatalf("unexpected body parts: %v", bodyParts)
			}
			return []string{"Biceps", "Quads"}
		},
	}
	h := NewSuggestionHandler(&stubSuggestionService{}, exercises)

	c, rec := newJSONContext(t, http.MethodGet, "/api/exercise-options?body_parts=Arms,Legs", "")
	if err := h.ExerciseOptions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp muscleOptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Muscles) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
