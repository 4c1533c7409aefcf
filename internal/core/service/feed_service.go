package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// FeedService merges challenges and workouts into one recency-sorted list.
type FeedService struct {
	challenges ports.ChallengeRepository
	workouts   ports.WorkoutRepository
}

func NewFeedService(challenges ports.ChallengeRepository, workouts ports.WorkoutRepository) *FeedService {
	return &FeedService{challenges: challenges, workouts: workouts}
}

func (s *FeedService) PublicFeed(ctx context.Context) ([]domain.Activity, error) {
	return s.feed(ctx,
		ports.ChallengeFilter{Privacy: domain.PrivacyPublic},
		ports.WorkoutFilter{Privacy: domain.PrivacyPublic},
	)
}

func (s *FeedService) UserFeed(ctx context.Context, email string) ([]domain.Activity, error) {
	return s.feed(ctx,
		ports.ChallengeFilter{Creator: email},
		ports.WorkoutFilter{Creator: email},
	)
}

func (s *FeedService) feed(ctx context.Context, cf ports.ChallengeFilter, wf ports.WorkoutFilter) ([]domain.Activity, error) {
	challenges, err := s.challenges.List(ctx, cf)
	if err != nil {
		return nil, fmt.Errorf("feed: list challenges: %w", err)
	}
	workouts, err := s.workouts.List(ctx, wf)
	if err != nil {
		return nil, fmt.Errorf("feed: list workouts: %w", err)
	}

	activities := make([]domain.Activity, 0, len(challenges)+len(workouts))
	for _, c := range challenges {
		activities = append(activities, domain.Activity{Challenge: c})
	}
	for _, w := range workouts {
		activities = append(activities, domain.Activity{Workout: w})
	}

	// Stable sort keeps insertion order on equal timestamps.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt().After(activities[j].CreatedAt())
	})

	return activities, nil
}
