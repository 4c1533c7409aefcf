package ports

import (
	"context"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

// CreateChallengeInput is the raw client payload for creating a challenge.
type CreateChallengeInput struct {
	ChallengeType  string
	Category       string
	Title          string
	Goal           string
	StartDate      string
	EndDate        string
	Description    string
	Privacy        string
	TargetValue    string
	Metric         string
	InvitedFriends []string
}

// ChallengeFilter narrows challenge listings. Zero values mean "no filter".
type ChallengeFilter struct {
	Creator string
	Privacy string
}

// ChallengeRepository persists challenges, listed created_at descending.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) error
	FindByID(ctx context.Context, id string) (*domain.Challenge, error)
	List(ctx context.Context, filter ChallengeFilter) ([]*domain.Challenge, error)
	IncrementParticipants(ctx context.Context, id string) error
}

// InvitationRepository persists challenge invitations. MarkAccepted and
// MarkDeclined perform an atomic pending→terminal transition and report
// whether this call won it; a lost transition means the invitation was
// absent or already terminal.
type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.ChallengeInvitation) error
	Find(ctx context.Context, challengeID, inviteeEmail string) (*domain.ChallengeInvitation, error)
	ListPendingForInvitee(ctx context.Context, email string) ([]*domain.ChallengeInvitation, error)
	MarkAccepted(ctx context.Context, challengeID, inviteeEmail string) (bool, error)
	MarkDeclined(ctx context.Context, challengeID, inviteeEmail string) (bool, error)
	CreateParticipant(ctx context.Context, p *domain.ChallengeParticipant) error
}

type ChallengeService interface {
	CreateChallenge(ctx context.Context, in CreateChallengeInput, creatorEmail string) (*domain.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*domain.Challenge, error)
	ListChallenges(ctx context.Context, privacy string) ([]*domain.Challenge, error)
}

type InvitationService interface {
	AcceptInvitation(ctx context.Context, challengeID, inviteeEmail string) error
	DeclineInvitation(ctx context.Context, challengeID, inviteeEmail string) error
	ListPendingInvitations(ctx context.Context, email string) ([]*domain.ChallengeInvitation, error)
}
