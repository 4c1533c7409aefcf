package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spotterhq/spotter-api/internal/core/domain"
	"github.com/spotterhq/spotter-api/internal/core/ports"
	"github.com/spotterhq/spotter-api/internal/core/validation"
)

// ChallengeService creates and reads challenges. The creator is always the
// first participant; invited friends get a pending invitation each.
type ChallengeService struct {
	repo        ports.ChallengeRepository
	invitations ports.InvitationRepository
	rules       validation.ChallengeRules
	logger      zerolog.Logger
}

func NewChallengeService(repo ports.ChallengeRepository, invitations ports.InvitationRepository, rules validation.ChallengeRules, logger zerolog.Logger) *ChallengeService {
	return &ChallengeService{repo: repo, invitations: invitations, rules: rules, logger: logger}
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, in ports.CreateChallengeInput, creatorEmail string) (*domain.Challenge, error) {
	today := startOfDay(time.Now().UTC())
	normalized, errs := s.rules.Challenge(in, today)
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	if creatorEmail == "" {
		creatorEmail = "Anonymous"
	}

	invited := make([]string, 0, len(in.InvitedFriends))
	for _, friend := range in.InvitedFriends {
		if f := strings.ToLower(strings.TrimSpace(friend)); f != "" && f != creatorEmail {
			invited = append(invited, f)
		}
	}

	challenge := &domain.Challenge{
		ID:             uuid.NewString(),
		ChallengeType:  normalized.ChallengeType,
		Category:       normalized.Category,
		Title:          normalized.Title,
		Goal:           normalized.Goal,
		StartDate:      normalized.StartDate,
		EndDate:        normalized.EndDate,
		Description:    normalized.Description,
		Privacy:        normalized.Privacy,
		InvitedFriends: invited,
		TargetValue:    normalized.TargetValue,
		Metric:         normalized.Metric,
		Creator:        creatorEmail,
		CreatedAt:      time.Now().UTC(),
		Participants:   1,
		Type:           domain.PostTypeChallenge,
	}

	if err := s.repo.Create(ctx, challenge); err != nil {
		s.logger.Error().Err(err).Str("creator", creatorEmail).Msg("failed to save challenge")
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveChallenge, err)
	}

	// Invitation failures don't undo the created challenge.
	for _, friend := range invited {
		inv := &domain.ChallengeInvitation{
			ID:           uuid.NewString(),
			ChallengeID:  challenge.ID,
			InviteeEmail: friend,
			InviterEmail: creatorEmail,
			Status:       domain.InvitationPending,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.invitations.Create(ctx, inv); err != nil && !errors.Is(err, domain.ErrDuplicateInvitation) {
			s.logger.Warn().Err(err).Str("invitee", friend).Str("challenge_id", challenge.ID).Msg("failed to create invitation")
		}
	}

	s.logger.Info().
		Str("challenge_id", challenge.ID).
		Str("challenge_type", challenge.ChallengeType).
		Str("creator", creatorEmail).
		Int("invited", len(invited)).
		Msg("challenge created")

	return challenge, nil
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*domain.Challenge, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ChallengeService) ListChallenges(ctx context.Context, privacy string) ([]*domain.Challenge, error) {
	return s.repo.List(ctx, ports.ChallengeFilter{Privacy: privacy})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
