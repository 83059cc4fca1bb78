package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/service/slack"
)

// FeedbackUseCase records curation decisions from the Slack side channel.
type FeedbackUseCase struct {
	repo interfaces.Repository
}

func NewFeedbackUseCase(repo interfaces.Repository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Submit parses an inbound feedback payload and persists it. Each payload
// produces exactly one immutable record.
func (uc *FeedbackUseCase) Submit(ctx context.Context, payload *slack.FeedbackPayload) (*model.Feedback, error) {
	feedback := slack.ParseFeedback(payload)

	created, err := uc.repo.Feedback().Create(ctx, feedback)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to persist feedback")
	}

	return created, nil
}

// List returns all recorded feedback.
func (uc *FeedbackUseCase) List(ctx context.Context) ([]*model.Feedback, error) {
	return uc.repo.Feedback().List(ctx)
}
