package ports

import (
	"context"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Username       *string
	Bio            *string
	ProfilePicture *string
}

// UserRepository persists user accounts. Email uniqueness is enforced by the
// adapter (unique index); Create returns domain.ErrUserExists on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.User, error)
}

// SessionRepository persists opaque session tokens. DeleteByToken is a no-op
// when the token is absent.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	Email string
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ValidateToken returns the email bound to a live session, or
	// domain.ErrInvalidToken. Expired sessions are deleted as a side effect.
	ValidateToken(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.User, error)
}
