package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/service/slack"
)

func TestParseFeedback(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		fb := slack.ParseFeedback(&slack.FeedbackPayload{
			CarIDs: []string{"car-1", "car-2"},
			Notes:  "both look promising",
		})

		gt.Array(t, fb.SelectedCarIDs).Length(2).Has(types.CarID("car-1"))
		gt.Value(t, fb.FeedbackNotes).Equal("both look promising")
		gt.Value(t, fb.Source).Equal(model.FeedbackSourceSlack)
		gt.Bool(t, fb.ProcessedAt.IsZero()).False()
	})

	t.Run("empty notes get placeholder", func(t *testing.T) {
		fb := slack.ParseFeedback(&slack.FeedbackPayload{CarIDs: []string{"car-1"}})

		gt.Value(t, fb.FeedbackNotes).Equal("No additional notes provided")
	})

	t.Run("nil payload", func(t *testing.T) {
		fb := slack.ParseFeedback(nil)

		gt.Array(t, fb.SelectedCarIDs).Length(0)
		gt.Value(t, fb.FeedbackNotes).Equal("No additional notes provided")
	})
}
