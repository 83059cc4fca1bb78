package interfaces

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
)

type FeedbackRepository interface {
	// Create persists a new feedback record with an assigned ID
	Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error)

	// List retrieves all feedback records
	List(ctx context.Context) ([]*model.Feedback, error)
}
