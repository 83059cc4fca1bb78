package interfaces

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type CarRepository interface {
	// Create persists a new car with an assigned ID. The record is
	// validated before the write.
	Create(ctx context.Context, car *model.Car) (*model.Car, error)

	// Get retrieves a car by ID
	Get(ctx context.Context, id types.CarID) (*model.Car, error)

	// List retrieves all cars in insertion order
	List(ctx context.Context) ([]*model.Car, error)

	// FindByTriple looks up a car by the exact (make, model, year) triple.
	// Returns ErrNotFound when no record matches.
	FindByTriple(ctx context.Context, carMake, carModel string, year int) (*model.Car, error)
}
