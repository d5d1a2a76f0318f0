package database

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// ErrNotFound is returned when an entity is not present in a collection.
var ErrNotFound = errors.New("not found")

// Collection is a typed repository over a whole JSON-serialized collection
// stored under a single logical key. There is exactly one writer at a time
// (the admin surface), so every write replaces the entire collection.
type Collection[T any] struct {
	store KVStore
	key   string
	idOf  func(T) string
	seed  func() []T
}

func NewCollection[T any](store KVStore, key string, idOf func(T) string, seed func() []T) *Collection[T] {
	return &Collection[T]{store: store, key: key, idOf: idOf, seed: seed}
}

// Init seeds the collection with its defaults when the key is absent. This
// is the explicit first-run initialization step; reads never seed as a side
// effect unless the stored value is unreadable.
func (c *Collection[T]) Init(ctx context.Context) error {
	_, err := c.store.Get(ctx, c.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	return c.ReplaceAll(ctx, c.seed())
}

// All returns every item in the collection. A present-but-unparsable value is
// a storage read failure: it is logged, the defaults are reseeded, and the
// defaults are returned rather than failing the caller.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		defaults := c.seed()
		if err := c.ReplaceAll(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("Stored collection is unreadable, reseeding defaults",
			zap.String("key", c.key),
			zap.Error(err),
		)
		defaults := c.seed()
		if err := c.ReplaceAll(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return items, nil
}

// Get returns the item with the given id or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.idOf(items[i]) == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

// Put replaces the item with a matching id, or appends it when no item
// matches.
func (c *Collection[T]) Put(ctx context.Context, item T) error {
	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if c.idOf(items[i]) == c.idOf(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.ReplaceAll(ctx, items)
}

// Delete filters the item out of the collection. Deleting an absent id is a
// no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	return c.ReplaceAll(ctx, kept)
}

// ReplaceAll overwrites the whole persisted collection.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, data)
}
