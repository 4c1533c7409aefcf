package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const (
	maxWorkoutNameLen  = 100
	maxDurationMinutes = 1440
	maxCalories        = 10000
	minNotesLen        = 5
	maxNotesLen        = 1000
)

var workoutTypes = []string{"cardio", "strength", "flexibility", "sports"}
var intensities = []string{"low", "medium", "high"}

// NormalizedWorkout is the cleaned-up output of a successful validation.
type NormalizedWorkout struct {
	WorkoutName string
	Date        string
	Duration    int
	WorkoutType string
	Intensity   string
	Calories    *int
	Notes       string
	Privacy     string
}

// Workout validates raw workout input. All checks run independently; every
// violation is appended in field order.
func Workout(in ports.LogWorkoutInput) (NormalizedWorkout, []string) {
	var out NormalizedWorkout
	var errs []string

	out.WorkoutName = strings.TrimSpace(in.WorkoutName)
	if out.WorkoutName == "" {
		errs = append(errs, "Workout name is required")
	} else if utf8.RuneCountInString(out.WorkoutName) > maxWorkoutNameLen {
		errs = append(errs, "Workout name must be less than 100 characters")
	}

	out.Date = strings.TrimSpace(in.Date)
	if out.Date == "" {
		errs = append(errs, "Workout date is required")
	} else if _, err := time.Parse(DateLayout, out.Date); err != nil {
		errs = append(errs, "Invalid date format. Use YYYY-MM-DD")
	}

	duration := strings.TrimSpace(in.Duration)
	if duration == "" {
		errs = append(errs, "Duration is required")
	} else if n, err := strconv.Atoi(duration); err != nil {
		errs = append(errs, "Duration must be a valid number")
	} else if n <= 0 {
		errs = append(errs, "Duration must be greater than 0")
	} else if n > maxDurationMinutes {
		errs = append(errs, "Duration cannot exceed 24 hours (1440 minutes)")
	} else {
		out.Duration = n
	}

	if strings.TrimSpace(in.WorkoutType) == "" {
		errs = append(errs, "Workout type is required")
	} else {
		out.WorkoutType = matchEnum(in.WorkoutType, workoutTypes...)
		if out.WorkoutType == "" {
			errs = append(errs, fmt.Sprintf("Workout type must be one of: %s", strings.Join(workoutTypes, ", ")))
		}
	}

	if strings.TrimSpace(in.Intensity) == "" {
		errs = append(errs, "Intensity level is required")
	} else {
		out.Intensity = matchEnum(in.Intensity, intensities...)
		if out.Intensity == "" {
			errs = append(errs, fmt.Sprintf("Intensity must be one of: %s", strings.Join(intensities, ", ")))
		}
	}

	out.Notes = strings.TrimSpace(in.Notes)
	if out.Notes == "" {
		errs = append(errs, "Workout notes are required")
	} else if utf8.RuneCountInString(out.Notes) < minNotesLen {
		errs = append(errs, "Workout notes must be at least 5 characters")
	} else if utf8.RuneCountInString(out.Notes) > maxNotesLen {
		errs = append(errs, "Workout notes must be less than 1000 characters")
	}

	out.Privacy = strings.ToLower(strings.TrimSpace(in.Privacy))
	if out.Privacy != domain.PrivacyPrivate && out.Privacy != domain.PrivacyPublic {
		errs = append(errs, "Privacy setting is required (private or public)")
	}

	// Calories are optional, but must be sane when present.
	if calories := strings.TrimSpace(in.Calories); calories != "" {
		if n, err := strconv.Atoi(calories); err != nil {
			errs = append(errs, "Calories must be a valid number")
		} else if n < 0 {
			errs = append(errs, "Calories burned cannot be negative")
		} else if n > maxCalories {
			errs = append(errs, "Calories burned seems too high (max 10000)")
		} else {
			out.Calories = &n
		}
	}

	return out, errs
}
