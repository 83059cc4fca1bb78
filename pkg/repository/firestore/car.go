package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type carDocument struct {
	ID          string    `firestore:"id"`
	Make        string    `firestore:"make"`
	Model       string    `firestore:"model"`
	Year        int       `firestore:"year"`
	FilthScore  *int      `firestore:"filth_score"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"created_at"`
}

func (d *carDocument) toModel() *model.Car {
	car := &model.Car{
		ID:          types.CarID(d.ID),
		Make:        d.Make,
		Model:       d.Model,
		Year:        d.Year,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
	if d.FilthScore != nil {
		score := *d.FilthScore
		car.FilthScore = &score
	}
	return car
}

type carRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCarRepository(client *firestore.Client) *carRepository {
	return &carRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *carRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_cars"
	}
	return "cars"
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := car.Validate(); err != nil {
		return nil, goerr.Wrap(err, "car validation failed")
	}

	id := types.NewCarID()
	doc := &carDocument{
		ID:          id.String(),
		Make:        car.Make,
		Model:       car.Model,
		Year:        car.Year,
		Description: car.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if car.FilthScore != nil {
		score := *car.FilthScore
		doc.FilthScore = &score
	}
	if doc.Description == "" {
		doc.Description = model.NoDescription
	}

	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create car", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *carRepository) Get(ctx context.Context, id types.CarID) (*model.Car, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "car not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get car", goerr.V("id", id))
	}

	var carDoc carDocument
	if err := doc.DataTo(&carDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal car", goerr.V("id", id))
	}

	return carDoc.toModel(), nil
}

func (r *carRepository) List(ctx context.Context) ([]*model.Car, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var cars []*model.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cars")
		}

		var carDoc carDocument
		if err := doc.DataTo(&carDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal car")
		}
		cars = append(cars, carDoc.toModel())
	}

	return cars, nil
}

func (r *carRepository) FindByTriple(ctx context.Context, carMake, carModel string, year int) (*model.Car, error) {
	iter := r.client.Collection(r.collection()).
		Where("make", "==", carMake).
		Where("model", "==", carModel).
		Where("year", "==", year).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "car not found",
			goerr.V("make", carMake), goerr.V("model", carModel), goerr.V("year", year))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query car",
			goerr.V("make", carMake), goerr.V("model", carModel), goerr.V("year", year))
	}

	var carDoc carDocument
	if err := doc.DataTo(&carDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal car")
	}

	return carDoc.toModel(), nil
}
