package interfaces

import (
	"context"

	"agencia_maker/internal/domain/entities"
)

// IUserRepository abstracts persistence for the user/maker roster.
//
// Reads fail open: when storage is empty, unreachable or corrupt the seed
// roster is returned instead of an error.
type IUserRepository interface {
	List(ctx context.Context) []entities.User
	GetByID(ctx context.Context, id string) (entities.User, bool)
	// Save upserts by id, appending unknown users.
	Save(ctx context.Context, u entities.User) error
	// UpdateFunc applies fn to the stored user atomically. A zero User is
	// returned when id is unknown.
	UpdateFunc(ctx context.Context, id string, fn func(*entities.User) error) (entities.User, error)
}
