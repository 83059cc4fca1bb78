package model

import (
	"time"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// FeedbackSourceSlack is the default origin of curation feedback.
const FeedbackSourceSlack = "slack"

// Feedback represents a single curation decision submitted by a curator.
// Records are created once per inbound feedback call and never updated.
type Feedback struct {
	ID             types.FeedbackID `json:"id" firestore:"id"`
	SelectedCarIDs []types.CarID    `json:"selectedCarIds" firestore:"selected_car_ids"`
	FeedbackNotes  string           `json:"feedbackNotes" firestore:"feedback_notes"`
	ProcessedAt    time.Time        `json:"processedAt" firestore:"processed_at"`
	Source         string           `json:"source" firestore:"source"`
}

// NewFeedback constructs a feedback record with defaults applied:
// ProcessedAt is the current time and Source is "slack".
// Referential integrity of SelectedCarIDs is not enforced at this layer.
func NewFeedback(carIDs []types.CarID, notes string) *Feedback {
	return &Feedback{
		SelectedCarIDs: carIDs,
		FeedbackNotes:  notes,
		ProcessedAt:    time.Now().UTC(),
		Source:         FeedbackSourceSlack,
	}
}
