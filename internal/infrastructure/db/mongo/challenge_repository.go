package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const challengesCollection = "challenges"

type ChallengeRepository struct {
	coll *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{coll: db.Collection(challengesCollection)}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge *domain.Challenge) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, challenge); err != nil {
		return fmt.Errorf("insert challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id string) (*domain.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var challenge domain.Challenge
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&challenge); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("find challenge: %w", err)
	}
	return &challenge, nil
}

func (r *ChallengeRepository) List(ctx context.Context, filter ports.ChallengeFilter) ([]*domain.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Creator != "" {
		query["creator"] = filter.Creator
	}
	if filter.Privacy != "" {
		query["privacy"] = filter.Privacy
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	defer cursor.Close(ctx)

	challenges := []*domain.Challenge{}
	if err := cursor.All(ctx, &challenges); err != nil {
		return nil, fmt.Errorf("decode challenges: %w", err)
	}
	return challenges, nil
}

func (r *ChallengeRepository) IncrementParticipants(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"participants": 1}})
	if err != nil {
		return fmt.Errorf("increment participants: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrChallengeNotFound
	}
	return nil
}

func ensureChallengeIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(challengesCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator", Value: 1}}},
		{Keys: bson.D{{Key: "privacy", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
