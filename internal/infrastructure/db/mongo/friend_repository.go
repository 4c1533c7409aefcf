package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

const (
	friendRequestsCollection = "friend_requests"
	friendshipsCollection    = "friendships"
)

type FriendRepository struct {
	requests    *mongo.Collection
	friendships *mongo.Collection
}

func NewFriendRepository(db *mongo.Database) *FriendRepository {
	return &FriendRepository{
		requests:    db.Collection(friendRequestsCollection),
		friendships: db.Collection(friendshipsCollection),
	}
}

func (r *FriendRepository) CreateRequest(ctx context.Context, req *domain.FriendRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.requests.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert friend request: %w", err)
	}
	return nil
}

func (r *FriendRepository) FindPending(ctx context.Context, from, to string) (*domain.FriendRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"from_user": from, "to_user": to, "status": domain.RequestPending}
	var req domain.FriendRequest
	if err := r.requests.FindOne(ctx, filter).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find pending request: %w", err)
	}
	return &req, nil
}

func (r *FriendRepository) ListIncomingPending(ctx context.Context, to string) ([]*domain.FriendRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"to_user": to, "status": domain.RequestPending}
	cursor, err := r.requests.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list incoming requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []*domain.FriendRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return requests, nil
}

// MarkAccepted flips the exact pending (from, to) request to accepted in a
// single update. The status filter makes the transition atomic: only one
// caller can win it.
func (r *FriendRepository) MarkAccepted(ctx context.Context, from, to string, at time.Time) (bool, error) {
	return r.markTerminal(ctx, from, to, bson.M{"status": domain.RequestAccepted, "accepted_at": at})
}

func (r *FriendRepository) MarkRejected(ctx context.Context, from, to string, at time.Time) (bool, error) {
	return r.markTerminal(ctx, from, to, bson.M{"status": domain.RequestRejected, "rejected_at": at})
}

func (r *FriendRepository) markTerminal(ctx context.Context, from, to string, set bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"from_user": from, "to_user": to, "status": domain.RequestPending}
	result, err := r.requests.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update request status: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

func (r *FriendRepository) CreateFriendship(ctx context.Context, f *domain.Friendship) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.friendships.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyFriends
		}
		return fmt.Errorf("insert friendship: %w", err)
	}
	return nil
}

func (r *FriendRepository) FriendshipExists(ctx context.Context, user1, user2 string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.friendships.CountDocuments(ctx, bson.M{"user1": user1, "user2": user2})
	if err != nil {
		return false, fmt.Errorf("count friendships: %w", err)
	}
	return count > 0, nil
}

func (r *FriendRepository) DeleteFriendship(ctx context.Context, user1, user2 string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.friendships.DeleteOne(ctx, bson.M{"user1": user1, "user2": user2})
	if err != nil {
		return false, fmt.Errorf("delete friendship: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *FriendRepository) ListFriends(ctx context.Context, email string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"user1": email}, {"user2": email}}}
	cursor, err := r.friendships.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	defer cursor.Close(ctx)

	var edges []domain.Friendship
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, fmt.Errorf("decode friendships: %w", err)
	}

	friends := make([]string, 0, len(edges))
	for _, edge := range edges {
		if edge.User1 == email {
			friends = append(friends, edge.User2)
		} else {
			friends = append(friends, edge.User1)
		}
	}
	return friends, nil
}

func ensureFriendIndexes(ctx context.Context, db *mongo.Database) error {
	requests := db.Collection(friendRequestsCollection)
	// Partial unique index: only one pending request per directed pair, but
	// terminal requests keep their history.
	_, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "from_user", Value: 1}, {Key: "to_user", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": domain.RequestPending}),
	})
	if err != nil {
		return err
	}

	friendships := db.Collection(friendshipsCollection)
	_, err = friendships.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user1", Value: 1}, {Key: "user2", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
