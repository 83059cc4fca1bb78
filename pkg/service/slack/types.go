package slack

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// DefaultChannel is the curation channel used when none is configured.
const DefaultChannel = "car-curation"

// Service posts candidate cars to the curation channel.
type Service interface {
	// PostCandidates sends the given cars to the curation channel for
	// review. Delivery is best-effort; there are no retries.
	PostCandidates(ctx context.Context, cars []*model.Car) error
}

// FeedbackPayload is the inbound curation payload from the Slack side
// channel.
type FeedbackPayload struct {
	CarIDs []string `json:"carIds"`
	Notes  string   `json:"notes"`
}

// noNotes is substituted when a curator submits no notes.
const noNotes = "No additional notes provided"

// ParseFeedback maps an inbound payload to a feedback record. Missing car
// IDs become an empty selection; missing notes get a stock placeholder.
func ParseFeedback(payload *FeedbackPayload) *model.Feedback {
	var carIDs []types.CarID
	if payload != nil {
		carIDs = make([]types.CarID, len(payload.CarIDs))
		for i, id := range payload.CarIDs {
			carIDs[i] = types.CarID(id)
		}
	}

	notes := noNotes
	if payload != nil && payload.Notes != "" {
		notes = payload.Notes
	}

	return model.NewFeedback(carIDs, notes)
}
