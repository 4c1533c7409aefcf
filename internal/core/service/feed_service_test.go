package service

import (
	"context"
	"testing"
	"time"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

func addChallenge(t *testing.T, repo *stubChallengeRepo, id, creator, privacy string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Challenge{
		ID:        id,
		Title:     id,
		Creator:   creator,
		Privacy:   privacy,
		CreatedAt: createdAt,
		Type:      domain.PostTypeChallenge,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func addWorkout(t *testing.T, repo *stubWorkoutRepo, id, creator, privacy string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Workout{
		ID:          id,
		WorkoutName: id,
		Creator:     creator,
		Privacy:     privacy,
		CreatedAt:   createdAt,
		Type:        domain.PostTypeWorkout,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPublicFeed_MergesAndSortsNewestFirst(t *testing.T) {
	challenges := newStubChallengeRepo()
	workouts := newStubWorkoutRepo()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	addChallenge(t, challenges, "c-old", "alice@bu.edu", domain.PrivacyPublic, base)
	addWorkout(t, workouts, "w-mid", "bob@bu.edu", domain.PrivacyPublic, base.Add(time.Hour))
	addChallenge(t, challenges, "c-new", "alice@bu.edu", domain.PrivacyPublic, base.Add(2*time.Hour))

	svc := NewFeedService(challenges, workouts)
	feed, err := svc.PublicFeed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(feed) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(feed))
	}
	wantOrder := []time.Time{base.Add(2 * time.Hour), base.Add(time.Hour), base}
	for i, want := range wantOrder {
		if !feed[i].CreatedAt().Equal(want) {
			t.Errorf("position %d: expected %v, got %v", i, want, feed[i].CreatedAt())
		}
	}
	if feed[0].Challenge == nil || feed[1].Workout == nil {
		t.Error("feed should interleave challenges and workouts by recency")
	}
}

func TestPublicFeed_ExcludesPrivatePosts(t *testing.T) {
	challenges := newStubChallengeRepo()
	workouts := newStubWorkoutRepo()
	now := time.Now().UTC()

	addChallenge(t, challenges, "c-public", "alice@bu.edu", domain.PrivacyPublic, now)
	addChallenge(t, challenges, "c-private", "alice@bu.edu", domain.PrivacyPrivate, now)
	addWorkout(t, workouts, "w-private", "bob@bu.edu", domain.PrivacyPrivate, now)

	svc := NewFeedService(challenges, workouts)
	feed, err := svc.PublicFeed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 1 || feed[0].Challenge == nil || feed[0].Challenge.ID != "c-public" {
		t.Errorf("expected only the public challenge, got %d items", len(feed))
	}
}

func TestUserFeed_IncludesOwnPrivatePosts(t *testing.T) {
	challenges := newStubChallengeRepo()
	workouts := newStubWorkoutRepo()
	now := time.Now().UTC()

	addChallenge(t, challenges, "c-mine", "alice@bu.edu", domain.PrivacyPrivate, now)
	addWorkout(t, workouts, "w-mine", "alice@bu.edu", domain.PrivacyPublic, now.Add(time.Minute))
	addWorkout(t, workouts, "w-other", "bob@bu.edu", domain.PrivacyPublic, now)

	svc := NewFeedService(challenges, workouts)
	feed, err := svc.UserFeed(context.Background(), "alice@bu.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(feed))
	}
	for _, activity := range feed {
		creator := ""
		if activity.Challenge != nil {
			creator = activity.Challenge.Creator
		} else if activity.Workout != nil {
			creator = activity.Workout.Creator
		}
		if creator != "alice@bu.edu" {
			t.Errorf("user feed leaked a post by %q", creator)
		}
	}
}

func TestFeed_EmptyIsNotNilError(t *testing.T) {
	svc := NewFeedService(newStubChallengeRepo(), newStubWorkoutRepo())
	feed, err := svc.PublicFeed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 0 {
		t.Errorf("expected empty feed, got %d", len(feed))
	}
}
