package repository

import (
	"context"
	"errors"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const UsersKey = "agencia_maker_users"

// UserRepository persists the roster as one JSON array under UsersKey.
type UserRepository struct {
	col *jsonCollection[entities.User]
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(store interfaces.IKeyValueStore, logger *zap.Logger) *UserRepository {
	return &UserRepository{col: newJSONCollection(store, UsersKey, "users", seed.Users, logger)}
}

func (r *UserRepository) Initialize(ctx context.Context) error {
	return r.col.initialize(ctx)
}

func (r *UserRepository) List(ctx context.Context) []entities.User {
	return r.col.list(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, bool) {
	for _, u := range r.col.list(ctx) {
		if u.ID == id {
			return u, true
		}
	}
	return entities.User{}, false
}

func (r *UserRepository) Save(ctx context.Context, u entities.User) error {
	return r.col.mutate(ctx, func(users []entities.User) ([]entities.User, error) {
		for i := range users {
			if users[i].ID == u.ID {
				users[i] = u
				return users, nil
			}
		}
		return append(users, u), nil
	})
}

func (r *UserRepository) UpdateFunc(ctx context.Context, id string, fn func(*entities.User) error) (entities.User, error) {
	var updated entities.User
	err := r.col.mutate(ctx, func(users []entities.User) ([]entities.User, error) {
		for i := range users {
			if users[i].ID != id {
				continue
			}
			if err := fn(&users[i]); err != nil {
				return nil, err
			}
			users[i].ID = id
			updated = users[i]
			return users, nil
		}
		return nil, errAbort
	})
	if errors.Is(err, errAbort) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return updated, nil
}
