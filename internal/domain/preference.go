package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preference is the durable review record created by a handoff. It is the
// only state that outlives a conversation session.
type Preference struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`

	// Submitter is denormalized for reviewer convenience on detail reads.
	Submitter *User `bson:"-" json:"submitter,omitempty"`
}

// PreferenceCreate is the handoff submission payload.
type PreferenceCreate struct {
	UserID      string `json:"userId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty,max=32"`
}

// SubmissionFor builds the handoff payload for a finalized proposal.
func SubmissionFor(brief Brief, proposal, userID, phone string) PreferenceCreate {
	name := brief.CompanyName
	if name == "" {
		name = "New Lead"
	}
	return PreferenceCreate{
		UserID:      userID,
		Title:       "Project: " + name,
		Description: proposal,
		Phone:       phone,
	}
}

// PreferenceRepository defines the interface for handoff record storage
type PreferenceRepository interface {
	Insert(ctx context.Context, pref *Preference) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Preference, error)
	FindOneByUserID(ctx context.Context, userID primitive.ObjectID) (*Preference, error)
}
