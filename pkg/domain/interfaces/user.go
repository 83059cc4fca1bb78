package interfaces

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

type UserRepository interface {
	// Create persists a new user with an assigned ID
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// GetByEmail retrieves a user by email. Returns ErrNotFound when no
	// user has the given address.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
