package ports

import (
	"context"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// SocialRepository persists likes and comments. Like uniqueness per
// (user, post) is enforced by the adapter; Create returns
// domain.ErrAlreadyLiked on a duplicate.
type SocialRepository interface {
	CreateLike(ctx context.Context, like *domain.Like) error
	DeleteLike(ctx context.Context, userEmail, postID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
}

type SocialService interface {
	LikePost(ctx context.Context, userEmail, postID, postType string) error
	UnlikePost(ctx context.Context, userEmail, postID string) error
	LikeCount(ctx context.Context, postID string) (int64, error)
	AddComment(ctx context.Context, userEmail, postID, postType, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
}
