package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

type stubGenerator struct {
	plan  *ports.RecipePlan
	err   error
	calls int
}

func (g *stubGenerator) GenerateDayPlan(_ context.Context, _ ports.RecipePreferences) (*ports.RecipePlan, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.plan, nil
}

type stubCache struct {
	entries map[string]*ports.RecipePlan
	getErr  error
	setErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*ports.RecipePlan)}
}

func (c *stubCache) Get(_ context.Context, key string) (*ports.RecipePlan, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	plan, ok := c.entries[key]
	return plan, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, plan *ports.RecipePlan) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = plan
	return nil
}

func samplePlan() *ports.RecipePlan {
	return &ports.RecipePlan{
		Meals: []ports.Recipe{{
			Name:        "Chicken Rice Bowl",
			Calories:    650,
			TimeMinutes: 25,
			Ingredients: []string{"chicken", "rice", "broccoli"},
			Steps:       []string{"Cook rice", "Grill chicken", "Steam broccoli"},
		}},
		TotalCalories: 650,
	}
}

func samplePrefs() ports.RecipePreferences {
	return ports.RecipePreferences{Goal: "bulking", Diet: "none", CookingTime: "medium"}
}

func TestDayPlan_CachesGeneratedPlan(t *testing.T) {
	generator := &stubGenerator{plan: samplePlan()}
	cache := newStubCache()
	svc := NewSuggestionService(generator, cache, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.DayPlan(ctx, samplePrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.DayPlan(ctx, samplePrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if generator.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", generator.calls)
	}
	if first.Meals[0].Name != second.Meals[0].Name {
		t.Error("cached plan should match the generated one")
	}
}

func TestDayPlan_EquivalentPrefsShareACacheEntry(t *testing.T) {
	generator := &stubGenerator{plan: samplePlan()}
	svc := NewSuggestionService(generator, newStubCache(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.DayPlan(ctx, ports.RecipePreferences{Goal: "Bulking", Diet: " none "}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.DayPlan(ctx, ports.RecipePreferences{Goal: "bulking", Diet: "none"}); err != nil {
		t.Fatal(err)
	}

	if generator.calls != 1 {
		t.Errorf("normalized prefs should share a cache key, got %d generator calls", generator.calls)
	}
}

func TestDayPlan_GeneratorFailure(t *testing.T) {
	generator := &stubGenerator{err: errors.New("upstream timeout")}
	svc := NewSuggestionService(generator, newStubCache(), zerolog.Nop())

	_, err := svc.DayPlan(context.Background(), samplePrefs())
	if !errors.Is(err, domain.ErrSuggestionUnavailable) {
		t.Fatalf("expected ErrSuggestionUnavailable, got %v", err)
	}
}

func TestDayPlan_CacheFailuresAreNonFatal(t *testing.T) {
	generator := &stubGenerator{plan: samplePlan()}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewSuggestionService(generator, cache, zerolog.Nop())

	plan, err := svc.DayPlan(context.Background(), samplePrefs())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(plan.Meals) != 1 {
		t.Errorf("unexpected plan: %+v", plan)
	}
}
