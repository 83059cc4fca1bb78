package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/repository/firestore"
	"github.com/dirtlot-lab/dirtlot/pkg/repository/memory"
)

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test-%s-", types.NewCarID())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}

	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})

	return repo
}

func runCarRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		score := 35
		created, err := repo.Car().Create(ctx, &model.Car{
			Make:       "Toyota",
			Model:      "Corolla",
			Year:       1998,
			FilthScore: &score,
		})
		gt.NoError(t, err).Required()

		gt.String(t, created.ID.String()).NotEqual("")
		gt.Value(t, created.Make).Equal("Toyota")
		gt.Value(t, created.Model).Equal("Corolla")
		gt.Value(t, created.Year).Equal(1998)
		gt.Value(t, created.FilthScore).NotNil()
		gt.Value(t, *created.FilthScore).Equal(35)
		gt.Value(t, created.Description).Equal(model.NoDescription)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Create rejects missing listing fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Car().Create(ctx, &model.Car{Make: "Toyota"})
		gt.Error(t, err)
	})

	t.Run("Get returns the stored car", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Car().Create(ctx, &model.Car{
			Make:        "Honda",
			Model:       "Civic",
			Year:        2003,
			Description: "a fine commuter",
		})
		gt.NoError(t, err).Required()

		got, err := repo.Car().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(created.ID)
		gt.Value(t, got.Description).Equal("a fine commuter")
	})

	t.Run("Get not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Car().Get(ctx, types.NewCarID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("List returns cars in insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
			_, err := repo.Car().Create(ctx, &model.Car{
				Make:  "Make",
				Model: name,
				Year:  2000 + i,
			})
			gt.NoError(t, err).Required()
		}

		cars, err := repo.Car().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, cars).Length(3)
		gt.Value(t, cars[0].Model).Equal("Alpha")
		gt.Value(t, cars[1].Model).Equal("Bravo")
		gt.Value(t, cars[2].Model).Equal("Charlie")
	})

	t.Run("FindByTriple matches exact triple only", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Car().Create(ctx, &model.Car{
			Make:  "Ford",
			Model: "F-150",
			Year:  1995,
		})
		gt.NoError(t, err).Required()

		found, err := repo.Car().FindByTriple(ctx, "Ford", "F-150", 1995)
		gt.NoError(t, err).Required()
		gt.Value(t, found.Make).Equal("Ford")

		_, err = repo.Car().FindByTriple(ctx, "Ford", "F-150", 1996)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestMemoryCarRepository(t *testing.T) {
	runCarRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreCarRepository(t *testing.T) {
	runCarRepositoryTest(t, newFirestoreRepo)
}
