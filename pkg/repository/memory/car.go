package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type carRepository struct {
	mu    sync.RWMutex
	cars  map[types.CarID]*model.Car
	order []types.CarID
}

func newCarRepository() *carRepository {
	return &carRepository{
		cars: make(map[types.CarID]*model.Car),
	}
}

func copyCar(car *model.Car) *model.Car {
	copied := *car
	if car.FilthScore != nil {
		score := *car.FilthScore
		copied.FilthScore = &score
	}
	return &copied
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := car.Validate(); err != nil {
		return nil, goerr.Wrap(err, "car validation failed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyCar(car)
	created.ID = types.NewCarID()
	created.CreatedAt = time.Now().UTC()
	if created.Description == "" {
		created.Description = model.NoDescription
	}

	r.cars[created.ID] = created
	r.order = append(r.order, created.ID)

	return copyCar(created), nil
}

func (r *carRepository) Get(ctx context.Context, id types.CarID) (*model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, exists := r.cars[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "car not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return copyCar(car), nil
}

func (r *carRepository) List(ctx context.Context) ([]*model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cars := make([]*model.Car, 0, len(r.order))
	for _, id := range r.order {
		cars = append(cars, copyCar(r.cars[id]))
	}

	return cars, nil
}

func (r *carRepository) FindByTriple(ctx context.Context, carMake, carModel string, year int) (*model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		car := r.cars[id]
		if car.Make == carMake && car.Model == carModel && car.Year == year {
			return copyCar(car), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "car not found",
		goerr.V("make", carMake), goerr.V("model", carModel), goerr.V("year", year))
}
