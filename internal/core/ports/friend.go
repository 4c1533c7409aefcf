package ports

import (
	"context"
	"time"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// FriendRepository persists friend requests and friendship edges.
// MarkAccepted and MarkRejected perform an atomic pending→terminal transition
// on the exact (from, to) pair and report whether this call won it.
// Friendships are keyed by the lexicographically sorted pair.
type FriendRepository interface {
	CreateRequest(ctx context.Context, req *domain.FriendRequest) error
	FindPending(ctx context.Context, from, to string) (*domain.FriendRequest, error)
	ListIncomingPending(ctx context.Context, to string) ([]*domain.FriendRequest, error)
	MarkAccepted(ctx context.Context, from, to string, at time.Time) (bool, error)
	MarkRejected(ctx context.Context, from, to string, at time.Time) (bool, error)

	CreateFriendship(ctx context.Context, f *domain.Friendship) error
	FriendshipExists(ctx context.Context, user1, user2 string) (bool, error)
	DeleteFriendship(ctx context.Context, user1, user2 string) (bool, error)
	ListFriends(ctx context.Context, email string) ([]string, error)
}

type FriendService interface {
	SendRequest(ctx context.Context, from, to string) (*domain.FriendRequest, error)
	AcceptRequest(ctx context.Context, from, to string) error
	RejectRequest(ctx context.Context, from, to string) error
	RemoveFriend(ctx context.Context, a, b string) error
	ListFriends(ctx context.Context, email string) ([]string, error)
	ListIncomingRequests(ctx context.Context, email string) ([]*domain.FriendRequest, error)
}
