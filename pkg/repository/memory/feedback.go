package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type feedbackRepository struct {
	mu      sync.RWMutex
	records []*model.Feedback
}

func newFeedbackRepository() *feedbackRepository {
	return &feedbackRepository{}
}

func copyFeedback(fb *model.Feedback) *model.Feedback {
	copied := *fb
	copied.SelectedCarIDs = append([]types.CarID(nil), fb.SelectedCarIDs...)
	return &copied
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyFeedback(feedback)
	created.ID = types.NewFeedbackID()
	if created.ProcessedAt.IsZero() {
		created.ProcessedAt = time.Now().UTC()
	}
	if created.Source == "" {
		created.Source = model.FeedbackSourceSlack
	}

	r.records = append(r.records, created)
	return copyFeedback(created), nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.Feedback, 0, len(r.records))
	for _, fb := range r.records {
		records = append(records, copyFeedback(fb))
	}

	return records, nil
}
