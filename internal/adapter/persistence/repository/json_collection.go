package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// errAbort stops a mutation without writing; callers map it to a not-found
// result.
var errAbort = errors.New("collection mutation aborted")

// jsonCollection is a typed view over one key holding a JSON array.
//
// Reads fall back to the seed when the key is absent, unreadable or holds
// malformed JSON. Writes start from the seed only when the key is absent; an
// unreadable or malformed value aborts the write so stored records are never
// replaced. Read-modify-write cycles are serialized per collection so
// concurrent writers in the same process never lose updates.
type jsonCollection[T any] struct {
	store  interfaces.IKeyValueStore
	key    string
	name   string
	seed   func() []T
	logger *zap.Logger
	mu     sync.Mutex
}

func newJSONCollection[T any](store interfaces.IKeyValueStore, key, name string, seed func() []T, logger *zap.Logger) *jsonCollection[T] {
	return &jsonCollection[T]{store: store, key: key, name: name, seed: seed, logger: logger}
}

// initialize writes the seed when the key is absent. Idempotent.
func (c *jsonCollection[T]) initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	if found {
		return nil
	}
	if err := c.write(ctx, c.seed()); err != nil {
		return err
	}
	c.logger.Info("[repository] collection seeded", zap.String("collection", c.name), zap.String("key", c.key))
	return nil
}

func (c *jsonCollection[T]) list(ctx context.Context) []T {
	data, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.logger.Warn("[repository] storage read failed, serving seed",
			zap.String("collection", c.name), zap.Error(err))
		return c.seed()
	}
	if !found {
		return c.seed()
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("[repository] malformed collection, serving seed",
			zap.String("collection", c.name), zap.Error(err))
		return c.seed()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// mutate loads the collection, applies fn and persists the result, all under
// the collection lock. Returning errAbort from fn skips the write.
func (c *jsonCollection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.load(ctx)
	if err != nil {
		return err
	}
	items, err := fn(current)
	if err != nil {
		return err
	}
	return c.write(ctx, items)
}

// load is the strict reader used by writes.
func (c *jsonCollection[T]) load(ctx context.Context) ([]T, error) {
	data, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.logger.Error("[repository] storage read failed, write skipped",
			zap.String("collection", c.name), zap.Error(err))
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	if !found {
		return c.seed(), nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Error("[repository] malformed collection, write skipped",
			zap.String("collection", c.name), zap.Error(err))
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *jsonCollection[T]) write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	if err := c.store.Put(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.name, err)
	}
	return nil
}
