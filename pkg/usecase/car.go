package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
	"github.com/dirtlot-lab/dirtlot/pkg/service/affiliate"
	"github.com/dirtlot-lab/dirtlot/pkg/service/content"
	"github.com/dirtlot-lab/dirtlot/pkg/service/scoring"
)

// CarUseCase serves catalog reads and single-car creation.
type CarUseCase struct {
	repo      interfaces.Repository
	generator *content.Generator
	links     *affiliate.Builder
}

func NewCarUseCase(repo interfaces.Repository, generator *content.Generator, links *affiliate.Builder) *CarUseCase {
	return &CarUseCase{
		repo:      repo,
		generator: generator,
		links:     links,
	}
}

// List returns all cars in insertion order.
func (uc *CarUseCase) List(ctx context.Context) ([]*model.Car, error) {
	return uc.repo.Car().List(ctx)
}

// Get returns a single car. ErrCarNotFound when the ID is unknown.
func (uc *CarUseCase) Get(ctx context.Context, id types.CarID) (*model.Car, error) {
	car, err := uc.repo.Car().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrCarNotFound, "no car for ID", goerr.V("id", id))
		}
		return nil, err
	}
	return car, nil
}

// Featured returns the first car in the store. ErrNoFeaturedCar when the
// catalog is empty.
func (uc *CarUseCase) Featured(ctx context.Context) (*model.Car, error) {
	cars, err := uc.repo.Car().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, goerr.Wrap(ErrNoFeaturedCar, "catalog is empty")
	}
	return cars[0], nil
}

// Create persists a new car. The filth score is computed when the caller
// omits it; the description is always computed.
func (uc *CarUseCase) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := car.Validate(); err != nil {
		return nil, goerr.Wrap(err, "car validation failed")
	}

	if car.FilthScore == nil {
		score := scoring.FilthScore(car.Year)
		car.FilthScore = &score
	}
	car.Description = uc.generator.Describe(ctx, car)

	created, err := uc.repo.Car().Create(ctx, car)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create car",
			goerr.V("make", car.Make), goerr.V("model", car.Model), goerr.V("year", car.Year))
	}

	return created, nil
}

// Links returns the outbound affiliate links for a car.
func (uc *CarUseCase) Links(car *model.Car) affiliate.Links {
	return uc.links.Build(car)
}
