package ports

import "context"

// RecipePreferences is the structured input for a recipe suggestion.
type RecipePreferences struct {
	Goal          string
	Diet          string
	CalorieTarget string
	CookingTime   string
	Ingredients   string
	Allergies     string
}

// Recipe is one AI-suggested meal with free-text fields.
type Recipe struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	TimeMinutes int      `json:"time_minutes"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// RecipePlan is a one-meal day plan.
type RecipePlan struct {
	Meals         []Recipe `json:"meals"`
	TotalCalories int      `json:"total_calories"`
}

// RecipeGenerator is the external AI collaborator. Failures must surface as
// errors, never crash the pipeline.
type RecipeGenerator interface {
	GenerateDayPlan(ctx context.Context, prefs RecipePreferences) (*RecipePlan, error)
}

// SuggestionCache caches generated plans. Get returns ok=false on a miss.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (*RecipePlan, bool, error)
	Set(ctx context.Context, key string, plan *RecipePlan) error
}

type SuggestionService interface {
	DayPlan(ctx context.Context, prefs RecipePreferences) (*RecipePlan, error)
}

// ExerciseSelection is the structured input for exercise generation: which
// body parts to train and which of their muscles to target.
type ExerciseSelection struct {
	BodyParts []string
	Muscles   []string
}

// Exercise is one AI-suggested weightlifting exercise.
type Exercise struct {
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	Equipment        string   `json:"equipment"`
	Instructions     []string `json:"instructions"`
}

// ExerciseGenerator is the external AI collaborator for exercise suggestions.
type ExerciseGenerator interface {
	GenerateExercises(ctx context.Context, sel ExerciseSelection) ([]Exercise, error)
}

// ExerciseCache caches generated exercise lists. Get returns ok=false on a
// miss.
type ExerciseCache interface {
	Get(ctx context.Context, key string) ([]Exercise, bool, error)
	Set(ctx context.Context, key string, exercises []Exercise) error
}

type ExerciseService interface {
	Exercises(ctx context.Context, sel ExerciseSelection) ([]Exercise, error)
	MusclesFor(bodyParts []string) []string
}
