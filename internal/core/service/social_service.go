package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const maxCommentLen = 500

// SocialService handles likes and comments on feed posts.
type SocialService struct {
	repo   ports.SocialRepository
	logger zerolog.Logger
}

func NewSocialService(repo ports.SocialRepository, logger zerolog.Logger) *SocialService {
	return &SocialService{repo: repo, logger: logger}
}

func (s *SocialService) LikePost(ctx context.Context, userEmail, postID, postType string) error {
	if errs := validatePostType(postType); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}

	like := &domain.Like{
		UserEmail: normalizeEmail(userEmail),
		PostID:    postID,
		PostType:  strings.ToLower(postType),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateLike(ctx, like); err != nil {
		if errors.Is(err, domain.ErrAlreadyLiked) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("like post: %w", err)
	}

	s.logger.Debug().Str("user", like.UserEmail).Str("post_id", postID).Msg("post liked")
	return nil
}

func (s *SocialService) UnlikePost(ctx context.Context, userEmail, postID string) error {
	deleted, err := s.repo.DeleteLike(ctx, normalizeEmail(userEmail), postID)
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	if !deleted {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (s *SocialService) LikeCount(ctx context.Context, postID string) (int64, error) {
	return s.repo.CountLikes(ctx, postID)
}

func (s *SocialService) AddComment(ctx context.Context, userEmail, postID, postType, text string) (*domain.Comment, error) {
	var errs []string
	errs = append(errs, validatePostType(postType)...)

	text = strings.TrimSpace(text)
	if text == "" {
		errs = append(errs, "Comment text is required")
	} else if utf8.RuneCountInString(text) > maxCommentLen {
		errs = append(errs, "Comment must be less than 500 characters")
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		UserEmail: normalizeEmail(userEmail),
		PostID:    postID,
		PostType:  strings.ToLower(postType),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.logger.Debug().Str("user", comment.UserEmail).Str("post_id", postID).Msg("comment added")
	return comment, nil
}

func (s *SocialService) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.ListComments(ctx, postID)
}

func validatePostType(postType string) []string {
	switch strings.ToLower(postType) {
	case domain.PostTypeChallenge, domain.PostTypeWorkout:
		return nil
	default:
		return []string{"Post type must be challenge or workout"}
	}
}
