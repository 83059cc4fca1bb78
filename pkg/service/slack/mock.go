package slack

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// mockService logs candidate posts instead of delivering them. It is the
// default when no bot token is configured.
type mockService struct {
	channel string
}

// NewMock creates a Service that only logs what it would post.
func NewMock(channel string) Service {
	if channel == "" {
		channel = DefaultChannel
	}
	return &mockService{channel: channel}
}

func (m *mockService) PostCandidates(ctx context.Context, cars []*model.Car) error {
	logger := logging.From(ctx)
	logger.Info("[SLACK MOCK] posting cars for curation",
		"channel", m.channel,
		"count", len(cars),
	)

	for _, car := range cars {
		logger.Info("[SLACK MOCK] candidate",
			"year", car.Year,
			"make", car.Make,
			"model", car.Model,
			"filth_score", car.FilthScore,
		)
	}

	return nil
}
