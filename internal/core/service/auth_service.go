package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login, and the session lifecycle.
// Sessions are opaque random tokens with a fixed TTL; expired sessions are
// deleted lazily when a validation encounters them.
type AuthService struct {
	users        ports.UserRepository
	sessions     ports.SessionRepository
	domainSuffix string
	sessionTTL   time.Duration
	logger       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, domainSuffix string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:        users,
		sessions:     sessions,
		domainSuffix: strings.ToLower(domainSuffix),
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !strings.HasSuffix(email, s.domainSuffix) {
		return nil, domain.ErrEmailDomainNotAllowed
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     localPart(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index backstops the check-then-act race above.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	result, err := s.createSession(ctx, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return result, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	// A missing user and a wrong password are indistinguishable to the caller.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.createSession(ctx, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user logged in")
	return result, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidToken
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("validate token: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn().Err(err).Msg("failed to purge expired session")
		}
		return "", domain.ErrInvalidToken
	}

	return session.Email, nil
}

// Logout deletes the session unconditionally. Deleting a token that no
// longer exists still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *AuthService) UpdateProfile(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.users.UpdateProfile(ctx, email, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", email).Msg("profile updated")
	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, email string) (*ports.AuthResult, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &ports.AuthResult{Token: session.Token, Email: email}, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
