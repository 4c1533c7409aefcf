package domain

import (
	"errors"
	"time"
)

var ErrChallengeNotFound = errors.New("challenge not found")
var ErrSaveChallenge = errors.New("Failed to save challenge")
var ErrInvitationNotFound = errors.New("invitation not found")
var ErrDuplicateInvitation = errors.New("invitation already exists")

// Challenge types and categories. Values are stored title-cased; inputs are
// normalized case-insensitively.
const (
	ChallengeTimeBased        = "Time-Based"
	ChallengeAchievementBased = "Achievement-Based"

	CategoryWeightlifting = "Weightlifting"
	CategoryCardio        = "Cardio"
	CategoryClasses       = "Classes"
)

// Challenge is a fitness challenge created by a user. TargetValue and Metric
// are only set for Achievement-Based challenges.
type Challenge struct {
	ID             string    `json:"id" bson:"_id"`
	ChallengeType  string    `json:"challenge_type" bson:"challenge_type"`
	Category       string    `json:"category" bson:"category"`
	Title          string    `json:"title" bson:"title"`
	Goal           string    `json:"goal" bson:"goal"`
	StartDate      string    `json:"start_date" bson:"start_date"`
	EndDate        string    `json:"end_date" bson:"end_date"`
	Description    string    `json:"description" bson:"description"`
	Privacy        string    `json:"privacy" bson:"privacy"`
	InvitedFriends []string  `json:"invited_friends" bson:"invited_friends"`
	TargetValue    float64   `json:"target_value,omitempty" bson:"target_value,omitempty"`
	Metric         string    `json:"metric,omitempty" bson:"metric,omitempty"`
	Creator        string    `json:"creator" bson:"creator"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	Participants   int       `json:"participants" bson:"participants"`
	Type           string    `json:"type" bson:"type"`
}

// InvitationStatus is the lifecycle state of a challenge invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

var invitationTransitions = map[InvitationStatus][]InvitationStatus{
	InvitationPending: {InvitationAccepted, InvitationDeclined},
}

// CanTransitionTo reports whether moving from the current status to next is a
// valid invitation transition. Accepted and declined are terminal.
func (s InvitationStatus) CanTransitionTo(next InvitationStatus) bool {
	for _, allowed := range invitationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ChallengeInvitation records an invite of one user to a challenge. Unique
// per (challenge_id, invitee_email).
type ChallengeInvitation struct {
	ID           string           `json:"id" bson:"_id"`
	ChallengeID  string           `json:"challenge_id" bson:"challenge_id"`
	InviteeEmail string           `json:"invitee_email" bson:"invitee_email"`
	InviterEmail string           `json:"inviter_email" bson:"inviter_email"`
	Status       InvitationStatus `json:"status" bson:"status"`
	CreatedAt    time.Time        `json:"created_at" bson:"created_at"`
	RespondedAt  *time.Time       `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
}

// ChallengeParticipant is inserted exactly once per accepted invitation.
type ChallengeParticipant struct {
	ChallengeID string    `json:"challenge_id" bson:"challenge_id"`
	Email       string    `json:"email" bson:"email"`
	JoinedAt    time.Time `json:"joined_at" bson:"joined_at"`
}
