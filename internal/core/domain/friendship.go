package domain

import (
	"errors"
	"time"
)

var ErrSelfFriendRequest = errors.New("cannot send a friend request to yourself")
var ErrAlreadyFriends = errors.New("users are already friends")
var ErrDuplicateRequest = errors.New("friend request already pending")
var ErrReciprocalPending = errors.New("a pending request from this user already exists")
var ErrRequestNotFound = errors.New("friend request not found")
var ErrFriendshipNotFound = errors.New("friendship not found")

// RequestStatus is the lifecycle state of a friend request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// requestTransitions defines the allowed state machine transitions. Accepted
// and rejected are terminal: re-accepting or re-rejecting is a no-op failure.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestAccepted, RequestRejected},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FriendRequest is a directed pending/accepted/rejected edge between two
// users. At most one pending request per (from, to) pair.
type FriendRequest struct {
	ID         string        `json:"id" bson:"_id"`
	FromUser   string        `json:"from_user" bson:"from_user"`
	ToUser     string        `json:"to_user" bson:"to_user"`
	Status     RequestStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	AcceptedAt *time.Time    `json:"accepted_at,omitempty" bson:"accepted_at,omitempty"`
	RejectedAt *time.Time    `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
}

// Friendship is a symmetric edge stored once per pair with User1 < User2.
type Friendship struct {
	User1     string    `json:"user1" bson:"user1"`
	User2     string    `json:"user2" bson:"user2"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// SortedPair orders two emails lexicographically so symmetric friendships
// deduplicate to a single row.
func SortedPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
