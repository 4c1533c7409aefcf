package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
)

// InvitationService drives the challenge-invitation state machine:
// pending → accepted or pending → declined. The participant insert and the
// participants counter increment run only after winning the atomic status
// transition, so a double accept bumps the counter exactly once.
type InvitationService struct {
	invitations ports.InvitationRepository
	challenges  ports.ChallengeRepository
	logger      zerolog.Logger
}

func NewInvitationService(invitations ports.InvitationRepository, challenges ports.ChallengeRepository, logger zerolog.Logger) *InvitationService {
	return &InvitationService{invitations: invitations, challenges: challenges, logger: logger}
}

func (s *InvitationService) AcceptInvitation(ctx context.Context, challengeID, inviteeEmail string) error {
	inviteeEmail = normalizeEmail(inviteeEmail)

	won, err := s.invitations.MarkAccepted(ctx, challengeID, inviteeEmail)
	if err != nil {
		return fmt.Errorf("accept invitation: %w", err)
	}
	if !won {
		return domain.ErrInvitationNotFound
	}

	participant := &domain.ChallengeParticipant{
		ChallengeID: challengeID,
		Email:       inviteeEmail,
		JoinedAt:    time.Now().UTC(),
	}
	if err := s.invitations.CreateParticipant(ctx, participant); err != nil {
		return fmt.Errorf("accept invitation: create participant: %w", err)
	}
	if err := s.challenges.IncrementParticipants(ctx, challengeID); err != nil {
		return fmt.Errorf("accept invitation: increment participants: %w", err)
	}

	s.logger.Info().Str("challenge_id", challengeID).Str("invitee", inviteeEmail).Msg("invitation accepted")
	return nil
}

func (s *InvitationService) DeclineInvitation(ctx context.Context, challengeID, inviteeEmail string) error {
	inviteeEmail = normalizeEmail(inviteeEmail)

	won, err := s.invitations.MarkDeclined(ctx, challengeID, inviteeEmail)
	if err != nil {
		return fmt.Errorf("decline invitation: %w", err)
	}
	if !won {
		return domain.ErrInvitationNotFound
	}

	s.logger.Info().Str("challenge_id", challengeID).Str("invitee", inviteeEmail).Msg("invitation declined")
	return nil
}

func (s *InvitationService) ListPendingInvitations(ctx context.Context, email string) ([]*domain.ChallengeInvitation, error) {
	return s.invitations.ListPendingForInvitee(ctx, normalizeEmail(email))
}
