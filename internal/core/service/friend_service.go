package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// FriendService drives the friend-request state machine:
// pending → accepted or pending → rejected, terminal after that. Accepting
// creates exactly one symmetric friendship edge keyed by the sorted pair.
type FriendService struct {
	users  ports.UserRepository
	repo   ports.FriendRepository
	logger zerolog.Logger
}

func NewFriendService(users ports.UserRepository, repo ports.FriendRepository, logger zerolog.Logger) *FriendService {
	return &FriendService{users: users, repo: repo, logger: logger}
}

func (s *FriendService) SendRequest(ctx context.Context, from, to string) (*domain.FriendRequest, error) {
	from = normalizeEmail(from)
	to = normalizeEmail(to)

	if from == to {
		return nil, domain.ErrSelfFriendRequest
	}
	for _, email := range []string{from, to} {
		if _, err := s.users.FindByEmail(ctx, email); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("send request: lookup %s: %w", email, err)
		}
	}

	user1, user2 := domain.SortedPair(from, to)
	friends, err := s.repo.FriendshipExists(ctx, user1, user2)
	if err != nil {
		return nil, fmt.Errorf("send request: check friendship: %w", err)
	}
	if friends {
		return nil, domain.ErrAlreadyFriends
	}

	if _, err := s.repo.FindPending(ctx, from, to); err == nil {
		return nil, domain.ErrDuplicateRequest
	} else if !errors.Is(err, domain.ErrRequestNotFound) {
		return nil, fmt.Errorf("send request: check pending: %w", err)
	}

	// A pending request in the other direction means the caller should
	// accept it instead of sending a new one.
	if _, err := s.repo.FindPending(ctx, to, from); err == nil {
		return nil, domain.ErrReciprocalPending
	} else if !errors.Is(err, domain.ErrRequestNotFound) {
		return nil, fmt.Errorf("send request: check reciprocal: %w", err)
	}

	request := &domain.FriendRequest{
		ID:        uuid.NewString(),
		FromUser:  from,
		ToUser:    to,
		Status:    domain.RequestPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		// Unique index backstop for concurrent duplicate sends.
		if errors.Is(err, domain.ErrDuplicateRequest) {
			return nil, domain.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("send request: %w", err)
	}

	s.logger.Info().Str("from", from).Str("to", to).Msg("friend request sent")
	return request, nil
}

func (s *FriendService) AcceptRequest(ctx context.Context, from, to string) error {
	from = normalizeEmail(from)
	to = normalizeEmail(to)

	now := time.Now().UTC()
	won, err := s.repo.MarkAccepted(ctx, from, to, now)
	if err != nil {
		return fmt.Errorf("accept request: %w", err)
	}
	if !won {
		return domain.ErrRequestNotFound
	}

	user1, user2 := domain.SortedPair(from, to)
	friendship := &domain.Friendship{User1: user1, User2: user2, CreatedAt: now}
	if err := s.repo.CreateFriendship(ctx, friendship); err != nil {
		// The sorted-pair unique index makes a concurrent duplicate harmless.
		if !errors.Is(err, domain.ErrAlreadyFriends) {
			return fmt.Errorf("accept request: create friendship: %w", err)
		}
	}

	s.logger.Info().Str("from", from).Str("to", to).Msg("friend request accepted")
	return nil
}

func (s *FriendService) RejectRequest(ctx context.Context, from, to string) error {
	from = normalizeEmail(from)
	to = normalizeEmail(to)

	won, err := s.repo.MarkRejected(ctx, from, to, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("reject request: %w", err)
	}
	if !won {
		return domain.ErrRequestNotFound
	}

	s.logger.Info().Str("from", from).Str("to", to).Msg("friend request rejected")
	return nil
}

func (s *FriendService) RemoveFriend(ctx context.Context, a, b string) error {
	user1, user2 := domain.SortedPair(normalizeEmail(a), normalizeEmail(b))
	deleted, err := s.repo.DeleteFriendship(ctx, user1, user2)
	if err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	if !deleted {
		return domain.ErrFriendshipNotFound
	}

	s.logger.Info().Str("user1", user1).Str("user2", user2).Msg("friendship removed")
	return nil
}

func (s *FriendService) ListFriends(ctx context.Context, email string) ([]string, error) {
	return s.repo.ListFriends(ctx, normalizeEmail(email))
}

func (s *FriendService) ListIncomingRequests(ctx context.Context, email string) ([]*domain.FriendRequest, error) {
	return s.repo.ListIncomingPending(ctx, normalizeEmail(email))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
