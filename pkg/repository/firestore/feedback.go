package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type feedbackDocument struct {
	ID             string    `firestore:"id"`
	SelectedCarIDs []string  `firestore:"selected_car_ids"`
	FeedbackNotes  string    `firestore:"feedback_notes"`
	ProcessedAt    time.Time `firestore:"processed_at"`
	Source         string    `firestore:"source"`
}

func (d *feedbackDocument) toModel() *model.Feedback {
	carIDs := make([]types.CarID, len(d.SelectedCarIDs))
	for i, id := range d.SelectedCarIDs {
		carIDs[i] = types.CarID(id)
	}
	return &model.Feedback{
		ID:             types.FeedbackID(d.ID),
		SelectedCarIDs: carIDs,
		FeedbackNotes:  d.FeedbackNotes,
		ProcessedAt:    d.ProcessedAt,
		Source:         d.Source,
	}
}

type feedbackRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFeedbackRepository(client *firestore.Client) *feedbackRepository {
	return &feedbackRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *feedbackRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_feedback"
	}
	return "feedback"
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	id := types.NewFeedbackID()

	carIDs := make([]string, len(feedback.SelectedCarIDs))
	for i, carID := range feedback.SelectedCarIDs {
		carIDs[i] = carID.String()
	}

	doc := &feedbackDocument{
		ID:             id.String(),
		SelectedCarIDs: carIDs,
		FeedbackNotes:  feedback.FeedbackNotes,
		ProcessedAt:    feedback.ProcessedAt,
		Source:         feedback.Source,
	}
	if doc.ProcessedAt.IsZero() {
		doc.ProcessedAt = time.Now().UTC()
	}
	if doc.Source == "" {
		doc.Source = model.FeedbackSourceSlack
	}

	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create feedback", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	iter := r.client.Collection(r.collection()).OrderBy("processed_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var records []*model.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate feedback")
		}

		var fbDoc feedbackDocument
		if err := doc.DataTo(&fbDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal feedback")
		}
		records = append(records, fbDoc.toModel())
	}

	return records, nil
}
