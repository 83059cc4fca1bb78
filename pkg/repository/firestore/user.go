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

type userDocument struct {
	ID           string    `firestore:"id"`
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"password_hash"`
	Role         string    `firestore:"role"`
	CreatedAt    time.Time `firestore:"created_at"`
}

func (d *userDocument) toModel() *model.User {
	return &model.User{
		ID:           types.UserID(d.ID),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         types.Role(d.Role),
		CreatedAt:    d.CreatedAt,
	}
}

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *userRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.Validate(); err != nil {
		return nil, goerr.Wrap(err, "user validation failed")
	}

	id := types.NewUserID()
	doc := &userDocument{
		ID:           id.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.Normalize().String(),
		CreatedAt:    time.Now().UTC(),
	}

	docRef := r.client.Collection(r.collection()).Doc(id.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("email", user.Email))
	}

	return doc.toModel(), nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var userDoc userDocument
	if err := doc.DataTo(&userDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user", goerr.V("id", id))
	}

	return userDoc.toModel(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	iter := r.client.Collection(r.collection()).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("email", email))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query user", goerr.V("email", email))
	}

	var userDoc userDocument
	if err := doc.DataTo(&userDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user")
	}

	return userDoc.toModel(), nil
}
