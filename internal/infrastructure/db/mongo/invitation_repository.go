package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spotterhq/spotter-api/internal/core/domain"
)

const (
	invitationsCollection  = "challenge_invitations"
	participantsCollection = "challenge_participants"
)

type InvitationRepository struct {
	invitations  *mongo.Collection
	participants *mongo.Collection
}

func NewInvitationRepository(db *mongo.Database) *InvitationRepository {
	return &InvitationRepository{
		invitations:  db.Collection(invitationsCollection),
		participants: db.Collection(participantsCollection),
	}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *domain.ChallengeInvitation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.invitations.InsertOne(ctx, inv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateInvitation
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) Find(ctx context.Context, challengeID, inviteeEmail string) (*domain.ChallengeInvitation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"challenge_id": challengeID, "invitee_email": inviteeEmail}
	var inv domain.ChallengeInvitation
	if err := r.invitations.FindOne(ctx, filter).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("find invitation: %w", err)
	}
	return &inv, nil
}

func (r *InvitationRepository) ListPendingForInvitee(ctx context.Context, email string) ([]*domain.ChallengeInvitation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"invitee_email": email, "status": domain.InvitationPending}
	cursor, err := r.invitations.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer cursor.Close(ctx)

	invitations := []*domain.ChallengeInvitation{}
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, fmt.Errorf("decode invitations: %w", err)
	}
	return invitations, nil
}

// MarkAccepted atomically flips the pending invitation to accepted. Exactly
// one caller wins the transition, which is what guards the participants
// counter against a double accept.
func (r *InvitationRepository) MarkAccepted(ctx context.Context, challengeID, inviteeEmail string) (bool, error) {
	return r.markTerminal(ctx, challengeID, inviteeEmail, domain.InvitationAccepted)
}

func (r *InvitationRepository) MarkDeclined(ctx context.Context, challengeID, inviteeEmail string) (bool, error) {
	return r.markTerminal(ctx, challengeID, inviteeEmail, domain.InvitationDeclined)
}

func (r *InvitationRepository) markTerminal(ctx context.Context, challengeID, inviteeEmail string, status domain.InvitationStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"challenge_id":  challengeID,
		"invitee_email": inviteeEmail,
		"status":        domain.InvitationPending,
	}
	update := bson.M{"$set": bson.M{"status": status, "responded_at": time.Now().UTC()}}
	result, err := r.invitations.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update invitation status: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

func (r *InvitationRepository) CreateParticipant(ctx context.Context, p *domain.ChallengeParticipant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.participants.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

func ensureInvitationIndexes(ctx context.Context, db *mongo.Database) error {
	invitations := db.Collection(invitationsCollection)
	_, err := invitations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "challenge_id", Value: 1}, {Key: "invitee_email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	participants := db.Collection(participantsCollection)
	_, err = participants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "challenge_id", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
