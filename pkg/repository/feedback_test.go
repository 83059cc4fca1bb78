package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/repository/memory"
)

func runFeedbackRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		carIDs := []types.CarID{types.NewCarID(), types.NewCarID()}
		created, err := repo.Feedback().Create(ctx, model.NewFeedback(carIDs, "keep both"))
		gt.NoError(t, err).Required()

		gt.String(t, created.ID.String()).NotEqual("")
		gt.Array(t, created.SelectedCarIDs).Length(2)
		gt.Value(t, created.FeedbackNotes).Equal("keep both")
		gt.Value(t, created.Source).Equal(model.FeedbackSourceSlack)
		gt.Bool(t, created.ProcessedAt.IsZero()).False()
	})

	t.Run("List returns all records", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := repo.Feedback().Create(ctx, model.NewFeedback(nil, "note"))
			gt.NoError(t, err).Required()
		}

		records, err := repo.Feedback().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(3)
	})

	t.Run("List is empty before any feedback", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		records, err := repo.Feedback().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(0)
	})
}

func TestMemoryFeedbackRepository(t *testing.T) {
	runFeedbackRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreFeedbackRepository(t *testing.T) {
	runFeedbackRepositoryTest(t, newFirestoreRepo)
}
