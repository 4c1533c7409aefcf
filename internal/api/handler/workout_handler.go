package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spotterhq/spotter-api/internal/api/metrics"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// WorkoutHandler handles workout logging and retrieval.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type logWorkoutRequest struct {
	WorkoutName string `json:"workout_name"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	WorkoutType string `json:"workout_type"`
	Intensity   string `json:"intensity"`
	Calories    string `json:"calories"`
	Notes       string `json:"notes"`
	Privacy     string `json:"privacy"`
}

// Create handles POST /api/workouts. All rule violations are reported in a
// single response.
//
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logWorkoutRequest  true  "Workout details"
// @Success      201   {object}  domain.Workout
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Router       /api/workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req logWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	workout, err := h.service.LogWorkout(c.Request().Context(), ports.LogWorkoutInput{
		WorkoutName: req.WorkoutName,
		Date:        req.Date,
		Duration:    req.Duration,
		WorkoutType: req.WorkoutType,
		Intensity:   req.Intensity,
		Calories:    req.Calories,
		Notes:       req.Notes,
		Privacy:     req.Privacy,
	}, email)
	if err != nil {
		return err
	}

	metrics.WorkoutsLoggedTotal.WithLabelValues(workout.WorkoutType).Inc()
	return c.JSON(http.StatusCreated, workout)
}

// Get handles GET /api/workouts/:id.
//
// @Summary      Get a workout by id
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  domain.Workout
// @Failure      404  {object}  map[string]string
// @Router       /api/workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	workout, err := h.service.GetWorkout(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// List handles GET /api/workouts.
//
// @Summary      List workouts, newest first
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Workout
// @Router       /api/workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	workouts, err := h.service.ListWorkouts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}
