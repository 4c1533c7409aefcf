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

const workoutsCollection = "workouts"

type WorkoutRepository struct {
	coll *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{coll: db.Collection(workoutsCollection)}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, workout); err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id string) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var workout domain.Workout
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&workout); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}
	return &workout, nil
}

func (r *WorkoutRepository) List(ctx context.Context, filter ports.WorkoutFilter) ([]*domain.Workout, error) {
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
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer cursor.Close(ctx)

	workouts := []*domain.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return workouts, nil
}

func ensureWorkoutIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(workoutsCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
