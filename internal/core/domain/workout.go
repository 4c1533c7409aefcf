package domain

import (
	"errors"
	"time"
)

var ErrWorkoutNotFound = errors.New("workout not found")
var ErrSaveWorkout = errors.New("Failed to save workout")

// Workout privacy settings shared with challenges.
const (
	PrivacyPrivate = "private"
	PrivacyPublic  = "public"
)

// Workout is a single logged training session. Workouts are immutable once
// created.
type Workout struct {
	ID          string    `json:"id" bson:"_id"`
	WorkoutName string    `json:"workout_name" bson:"workout_name"`
	Date        string    `json:"date" bson:"date"`
	Duration    int       `json:"duration" bson:"duration"`
	WorkoutType string    `json:"workout_type" bson:"workout_type"`
	Intensity   string    `json:"intensity" bson:"intensity"`
	Calories    *int      `json:"calories,omitempty" bson:"calories,omitempty"`
	Notes       string    `json:"notes" bson:"notes"`
	Privacy     string    `json:"privacy" bson:"privacy"`
	Creator     string    `json:"creator" bson:"creator"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Type        string    `json:"type" bson:"type"`
}
