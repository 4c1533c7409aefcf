package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

const (
	likesCollection    = "likes"
	commentsCollection = "comments"
)

type SocialRepository struct {
	likes    *mongo.Collection
	comments *mongo.Collection
}

func NewSocialRepository(db *mongo.Database) *SocialRepository {
	return &SocialRepository{
		likes:    db.Collection(likesCollection),
		comments: db.Collection(commentsCollection),
	}
}

func (r *SocialRepository) CreateLike(ctx context.Context, like *domain.Like) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.likes.InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *SocialRepository) DeleteLike(ctx context.Context, userEmail, postID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.likes.DeleteOne(ctx, bson.M{"user_email": userEmail, "post_id": postID})
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *SocialRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.likes.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (r *SocialRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *SocialRepository) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.comments.Find(ctx, bson.M{"post_id": postID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*domain.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func ensureSocialIndexes(ctx context.Context, db *mongo.Database) error {
	likes := db.Collection(likesCollection)
	_, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "post_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	comments := db.Collection(commentsCollection)
	_, err = comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
