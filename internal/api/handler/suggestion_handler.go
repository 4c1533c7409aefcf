package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/api/metrics"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// SuggestionHandler serves AI-generated recipe plans and exercise lists.
type SuggestionHandler struct {
	recipes   ports.SuggestionService
	exercises ports.ExerciseService
}

func NewSuggestionHandler(recipes ports.SuggestionService, exercises ports.ExerciseService) *SuggestionHandler {
	return &SuggestionHandler{recipes: recipes, exercises: exercises}
}

type recipePlanRequest struct {
	Goal          string `json:"goal"           validate:"omitempty,max=100"`
	Diet          string `json:"diet"           validate:"omitempty,max=100"`
	CalorieTarget string `json:"calorie_target" validate:"omitempty,max=20"`
	CookingTime   string `json:"cooking_time"   validate:"omitempty,max=100"`
	Ingredients   string `json:"ingredients"    validate:"omitempty,max=500"`
	Allergies     string `json:"allergies"      validate:"omitempty,max=500"`
}

// Plan handles POST /api/recipe-plan. A generator failure degrades to 502
// rather than crashing the request pipeline.
//
// @Summary      Generate a one-meal recipe plan
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recipePlanRequest  true  "Preferences"
// @Success      200   {object}  ports.RecipePlan
// @Failure      502   {object}  map[string]string
// @Router       /api/recipe-plan [post]
func (h *SuggestionHandler) Plan(c echo.Context) error {
	var req recipePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.recipes.DayPlan(c.Request().Context(), ports.RecipePreferences{
		Goal:          req.Goal,
		Diet:          req.Diet,
		CalorieTarget: req.CalorieTarget,
		CookingTime:   req.CookingTime,
		Ingredients:   req.Ingredients,
		Allergies:     req.Allergies,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

type exercisePlanRequest struct {
	BodyParts []string `json:"body_parts"`
	Muscles   []string `json:"muscles"`
}

type exercisePlanResponse struct {
	Exercises []ports.Exercise `json:"exercises"`
}

type muscleOptionsResponse struct {
	Muscles []string `json:"muscles"`
}

// Exercises handles POST /api/exercise-plan. The selection is checked against
// the body-part catalog; unknown muscles render as a 400 with the full
// violation list.
//
// @Summary      Generate exercises for selected body parts and muscles
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      exercisePlanRequest  true  "Selection"
// @Success      200   {object}  exercisePlanResponse
// @Failure      400   {object}  map[string][]string
// @Failure      502   {object}  map[string]string
// @Router       /api/exercise-plan [post]
func (h *SuggestionHandler) Exercises(c echo.Context) error {
	var req exercisePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exercises, err := h.exercises.Exercises(c.Request().Context(), ports.ExerciseSelection{
		BodyParts: req.BodyParts,
		Muscles:   req.Muscles,
	})
	if err != nil {
		return err
	}

	metrics.ExercisePlansTotal.Inc()
	return c.JSON(http.StatusOK, exercisePlanResponse{Exercises: exercises})
}

// ExerciseOptions handles GET /api/exercise-options, listing the muscles
// selectable for the body parts named in the comma-separated ?body_parts=
// query.
//
// @Summary      List selectable muscles for body parts
// @Tags         exercises
// @Produce      json
// @Security     BearerAuth
// @Param        body_parts  query  string  false  "Comma-separated body parts"
// @Success      200  {object}  muscleOptionsResponse
// @Router       /api/exercise-options [get]
func (h *SuggestionHandler) ExerciseOptions(c echo.Context) error {
	var parts []string
	if raw := c.QueryParam("body_parts"); raw != "" {
		parts = strings.Split(raw, ",")
	}
	return c.JSON(http.StatusOK, muscleOptionsResponse{Muscles: h.exercises.MusclesFor(parts)})
}
