package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/repository/memory"
	"github.com/dirtlot-lab/dirtlot/pkg/usecase"
)

func newCarUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), usecase.WithJWTSecret(testSecret))
}

func TestCarCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("computes score and description", func(t *testing.T) {
		uc := newCarUseCases(t)

		created, err := uc.Car.Create(ctx, &model.Car{Make: "Toyota", Model: "Corolla", Year: 1998})
		gt.NoError(t, err).Required()

		gt.Value(t, created.FilthScore).NotNil()
		gt.Value(t, *created.FilthScore).Equal(35)
		gt.Bool(t, strings.Contains(created.Description, "1998 Toyota Corolla")).True()
	})

	t.Run("caller-supplied score is kept", func(t *testing.T) {
		uc := newCarUseCases(t)

		score := 99
		created, err := uc.Car.Create(ctx, &model.Car{
			Make:       "Honda",
			Model:      "Civic",
			Year:       2003,
			FilthScore: &score,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, *created.FilthScore).Equal(99)
		gt.Bool(t, strings.Contains(created.Description, "filth score of 99")).True()
	})

	t.Run("rejects incomplete listing", func(t *testing.T) {
		uc := newCarUseCases(t)

		_, err := uc.Car.Create(ctx, &model.Car{Make: "Toyota"})
		gt.Error(t, err)
	})
}

func TestCarGet(t *testing.T) {
	ctx := context.Background()
	uc := newCarUseCases(t)

	created, err := uc.Car.Create(ctx, &model.Car{Make: "Ford", Model: "F-150", Year: 1995})
	gt.NoError(t, err).Required()

	t.Run("existing car", func(t *testing.T) {
		got, err := uc.Car.Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(created.ID)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := uc.Car.Get(ctx, types.NewCarID())
		gt.Error(t, err).Is(usecase.ErrCarNotFound)
	})
}

func TestCarFeatured(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		uc := newCarUseCases(t)

		_, err := uc.Car.Featured(ctx)
		gt.Error(t, err).Is(usecase.ErrNoFeaturedCar)
	})

	t.Run("first car is featured", func(t *testing.T) {
		uc := newCarUseCases(t)

		first, err := uc.Car.Create(ctx, &model.Car{Make: "Mazda", Model: "Miata", Year: 1992})
		gt.NoError(t, err).Required()
		_, err = uc.Car.Create(ctx, &model.Car{Make: "Subaru", Model: "Outback", Year: 1999})
		gt.NoError(t, err).Required()

		featured, err := uc.Car.Featured(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, featured.ID).Equal(first.ID)
	})
}

func TestCarLinks(t *testing.T) {
	uc := newCarUseCases(t)

	links := uc.Car.Links(&model.Car{Make: "Dodge", Model: "Neon", Year: 2001})
	gt.Bool(t, strings.Contains(links.Ebay, "2001+Dodge+Neon+parts")).True()
	gt.Bool(t, strings.Contains(links.Amazon, "tag=dirtlot-20")).True()
}

func TestFeedbackSubmit(t *testing.T) {
	ctx := context.Background()
	uc := newCarUseCases(t)

	fb, err := uc.Feedback.Submit(ctx, nil)
	gt.NoError(t, err).Required()
	gt.Value(t, fb.Source).Equal(model.FeedbackSourceSlack)

	records, err := uc.Feedback.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1)
}
