package domain

import (
	"errors"
	"time"
)

var ErrAlreadyLiked = errors.New("post already liked")
var ErrLikeNotFound = errors.New("like not found")
var ErrPostNotFound = errors.New("post not found")

// Post types a like or comment may attach to.
const (
	PostTypeChallenge = "challenge"
	PostTypeWorkout   = "workout"
)

// Like marks that a user liked a post. At most one like per (user, post).
type Like struct {
	UserEmail string    `json:"user_email" bson:"user_email"`
	PostID    string    `json:"post_id" bson:"post_id"`
	PostType  string    `json:"post_type" bson:"post_type"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Comment is an append-only remark on a post, listed newest first.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	UserEmail string    `json:"user_email" bson:"user_email"`
	PostID    string    `json:"post_id" bson:"post_id"`
	PostType  string    `json:"post_type" bson:"post_type"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
