package domain

import (
	"encoding/json"
	"time"
)

// Activity is one feed entry: either a challenge or a workout. Exactly one of
// the two pointers is set; it marshals as the underlying record so the feed
// stays a flat list of heterogeneous objects distinguished by their "type"
// field.
type Activity struct {
	Challenge *Challenge
	Workout   *Workout
}

// CreatedAt returns the creation time of the underlying record.
func (a Activity) CreatedAt() time.Time {
	if a.Challenge != nil {
		return a.Challenge.CreatedAt
	}
	if a.Workout != nil {
		return a.Workout.CreatedAt
	}
	return time.Time{}
}

func (a Activity) MarshalJSON() ([]byte, error) {
	if a.Challenge != nil {
		return json.Marshal(a.Challenge)
	}
	return json.Marshal(a.Workout)
}
