package domain

import (
	"errors"
	"time"
)

var ErrMissingCredentials = errors.New("email and password are required")
var ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserExists = errors.New("an account with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrMissingToken = errors.New("no token provided")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrSessionNotFound = errors.New("session not found")

// User models a registered account. The email is the natural key; username
// defaults to the local part of the email at registration.
type User struct {
	ID             string    `json:"-" bson:"_id,omitempty"`
	Email          string    `json:"email" bson:"email"`
	Username       string    `json:"username" bson:"username"`
	Bio            string    `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// Session is an opaque bearer token bound to a user identity. Expired
// sessions are purged when encountered, not by a background sweep.
type Session struct {
	Token     string    `json:"token" bson:"token"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
