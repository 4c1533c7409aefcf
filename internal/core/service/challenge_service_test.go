package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
	"github.com/spotterhq/spotter-api/internal/core/validation"
)

type stubChallengeRepo struct {
	byID       map[string]*domain.Challenge
	order      []string
	createErr  error
	increments map[string]int
}

func newStubChallengeRepo() *stubChallengeRepo {
	return &stubChallengeRepo{
		byID:       make(map[string]*domain.Challenge),
		increments: make(map[string]int),
	}
}

func (r *stubChallengeRepo) Create(_ context.Context, challenge *domain.Challenge) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *challenge
	r.byID[challenge.ID] = &clone
	r.order = append(r.order, challenge.ID)
	return nil
}

func (r *stubChallengeRepo) FindByID(_ context.Context, id string) (*domain.Challenge, error) {
	challenge, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	clone := *challenge
	return &clone, nil
}

func (r *stubChallengeRepo) List(_ context.Context, filter ports.ChallengeFilter) ([]*domain.Challenge, error) {
	var out []*domain.Challenge
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.byID[r.order[i]]
		if filter.Creator != "" && c.Creator != filter.Creator {
			continue
		}
		if filter.Privacy != "" && c.Privacy != filter.Privacy {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubChallengeRepo) IncrementParticipants(_ context.Context, id string) error {
	challenge, ok := r.byID[id]
	if !ok {
		return domain.ErrChallengeNotFound
	}
	challenge.Participants++
	r.increments[id]++
	return nil
}

type invitationKey struct {
	challengeID string
	invitee     string
}

type stubInvitationRepo struct {
	byKey        map[invitationKey]*domain.ChallengeInvitation
	participants []*domain.ChallengeParticipant
	createErr    error
}

func newStubInvitationRepo() *stubInvitationRepo {
	return &stubInvitationRepo{byKey: make(map[invitationKey]*domain.ChallengeInvitation)}
}

func (r *stubInvitationRepo) Create(_ context.Context, inv *domain.ChallengeInvitation) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := invitationKey{inv.ChallengeID, inv.InviteeEmail}
	if _, ok := r.byKey[key]; ok {
		return domain.ErrDuplicateInvitation
	}
	clone := *inv
	r.byKey[key] = &clone
	return nil
}

func (r *stubInvitationRepo) Find(_ context.Context, challengeID, inviteeEmail string) (*domain.ChallengeInvitation, error) {
	inv, ok := r.byKey[invitationKey{challengeID, inviteeEmail}]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvitationRepo) ListPendingForInvitee(_ context.Context, email string) ([]*domain.ChallengeInvitation, error) {
	var out []*domain.ChallengeInvitation
	for _, inv := range r.byKey {
		if inv.InviteeEmail == email && inv.Status == domain.InvitationPending {
			clone := *inv
			out = append(out, &clone)
		}
	}
	return out, nil
}

// markTerminal mirrors the atomic compare-and-set the Mongo repo performs.
func (r *stubInvitationRepo) markTerminal(challengeID, inviteeEmail string, status domain.InvitationStatus) (bool, error) {
	inv, ok := r.byKey[invitationKey{challengeID, inviteeEmail}]
	if !ok || inv.Status != domain.InvitationPending {
		return false, nil
	}
	inv.Status = status
	return true, nil
}

func (r *stubInvitationRepo) MarkAccepted(_ context.Context, challengeID, inviteeEmail string) (bool, error) {
	return r.markTerminal(challengeID, inviteeEmail, domain.InvitationAccepted)
}

func (r *stubInvitationRepo) MarkDeclined(_ context.Context, challengeID, inviteeEmail string) (bool, error) {
	return r.markTerminal(challengeID, inviteeEmail, domain.InvitationDeclined)
}

func (r *stubInvitationRepo) CreateParticipant(_ context.Context, p *domain.ChallengeParticipant) error {
	clone := *p
	r.participants = append(r.participants, &clone)
	return nil
}

func validCreateChallengeInput() ports.CreateChallengeInput {
	return ports.CreateChallengeInput{
		ChallengeType: "time-based",
		Category:      "cardio",
		Title:         "Mile a Day",
		Goal:          "Run daily",
		StartDate:     "2099-01-01",
		EndDate:       "2099-02-01",
		Description:   "Run at least one mile every day in January.",
		Privacy:       "public",
	}
}

func newChallengeService(repo *stubChallengeRepo, invitations *stubInvitationRepo) *ChallengeService {
	return NewChallengeService(repo, invitations, validation.DefaultChallengeRules(), zerolog.Nop())
}

func TestCreateChallenge_Success(t *testing.T) {
	repo := newStubChallengeRepo()
	svc := newChallengeService(repo, newStubInvitationRepo())

	challenge, err := svc.CreateChallenge(context.Background(), validCreateChallengeInput(), "alice@bu.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if challenge.ID == "" {
		t.Error("expected generated id")
	}
	if challenge.Participants != 1 {
		t.Errorf("creator should be the first participant, got %d", challenge.Participants)
	}
	if challenge.Type != domain.PostTypeChallenge {
		t.Errorf("expected type tag %q, got %q", domain.PostTypeChallenge, challenge.Type)
	}
	if challenge.ChallengeType != domain.ChallengeTimeBased {
		t.Errorf("expected normalized challenge type, got %q", challenge.ChallengeType)
	}
	if _, ok := repo.byID[challenge.ID]; !ok {
		t.Error("challenge not stored")
	}
}

func TestCreateChallenge_InvitesFriends(t *testing.T) {
	invitations := newStubInvitationRepo()
	svc := newChallengeService(newStubChallengeRepo(), invitations)

	in := validCreateChallengeInput()
	in.InvitedFriends = []string{"Bob@BU.edu", "", "alice@bu.edu", "carol@bu.edu"}

	challenge, err := svc.CreateChallenge(context.Background(), in, "alice@bu.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty entries and the creator are dropped.
	if len(challenge.InvitedFriends) != 2 {
		t.Fatalf("expected 2 invited friends, got %v", challenge.InvitedFriends)
	}

	for _, invitee := range []string{"bob@bu.edu", "carol@bu.edu"} {
		inv, ok := invitations.byKey[invitationKey{challenge.ID, invitee}]
		if !ok {
			t.Errorf("expected invitation for %s", invitee)
			continue
		}
		if inv.Status != domain.InvitationPending {
			t.Errorf("expected pending invitation for %s, got %s", invitee, inv.Status)
		}
		if inv.InviterEmail != "alice@bu.edu" {
			t.Errorf("unexpected inviter %q", inv.InviterEmail)
		}
	}
}

func TestCreateChallenge_InvitationFailureDoesNotUndoChallenge(t *testing.T) {
	repo := newStubChallengeRepo()
	invitations := newStubInvitationRepo()
	invitations.createErr = errors.New("write failed")
	svc := newChallengeService(repo, invitations)

	in := validCreateChallengeInput()
	in.InvitedFriends = []string{"bob@bu.edu"}

	challenge, err := svc.CreateChallenge(context.Background(), in, "alice@bu.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID[challenge.ID]; !ok {
		t.Error("challenge should survive invitation failures")
	}
}

func TestCreateChallenge_ValidationFailure(t *testing.T) {
	repo := newStubChallengeRepo()
	svc := newChallengeService(repo, newStubInvitationRepo())

	_, err := svc.CreateChallenge(context.Background(), ports.CreateChallengeInput{}, "alice@bu.edu")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing should be stored on validation failure")
	}
}

func TestCreateChallenge_StorageFailure(t *testing.T) {
	repo := newStubChallengeRepo()
	repo.createErr = errors.New("connection reset")
	svc := newChallengeService(repo, newStubInvitationRepo())

	_, err := svc.CreateChallenge(context.Background(), validCreateChallengeInput(), "alice@bu.edu")
	if !errors.Is(err, domain.ErrSaveChallenge) {
		t.Fatalf("expected ErrSaveChallenge, got %v", err)
	}
}

func TestListChallenges_PrivacyFilter(t *testing.T) {
	repo := newStubChallengeRepo()
	svc := newChallengeService(repo, newStubInvitationRepo())
	ctx := context.Background()

	public := validCreateChallengeInput()
	if _, err := svc.CreateChallenge(ctx, public, "alice@bu.edu"); err != nil {
		t.Fatal(err)
	}
	private := validCreateChallengeInput()
	private.Privacy = "private"
	if _, err := svc.CreateChallenge(ctx, private, "alice@bu.edu"); err != nil {
		t.Fatal(err)
	}

	challenges, err := svc.ListChallenges(ctx, domain.PrivacyPublic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(challenges) != 1 || challenges[0].Privacy != domain.PrivacyPublic {
		t.Errorf("expected only the public challenge, got %d", len(challenges))
	}
}
