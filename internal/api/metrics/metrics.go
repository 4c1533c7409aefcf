// Package metrics defines and registers all custom Prometheus metrics for
// the Spotter API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spotter"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts by result ("success" / "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// WorkoutsLoggedTotal counts workouts created, by workout type.
var WorkoutsLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workouts_logged_total",
		Help:      "Total number of workouts logged, by workout type.",
	},
	[]string{"workout_type"},
)

// ChallengesCreatedTotal counts challenges created, by challenge type.
var ChallengesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "challenges_created_total",
		Help:      "Total number of challenges created, by challenge type.",
	},
	[]string{"challenge_type"},
)

// FriendRequestsTotal counts friend-request operations by outcome
// (e.g. "sent", "accepted", "rejected", "duplicate").
var FriendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friend_requests_total",
		Help:      "Total number of friend request operations, by outcome.",
	},
	[]string{"outcome"},
)

// ExercisePlansTotal counts successful exercise-plan generations.
var ExercisePlansTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercise_plans_total",
		Help:      "Total number of exercise plans generated.",
	},
)

// InvitationResponsesTotal counts challenge-invitation responses
// ("accepted" / "declined").
var InvitationResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invitation_responses_total",
		Help:      "Total number of challenge invitation responses, by outcome.",
	},
	[]string{"outcome"},
)
