package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
)

// collection is one slot holding a JSON array of records. Every
// load-mutate-save sequence runs under mu so concurrent writers cannot lose
// each other's changes.
type collection[T models.Record] struct {
	mu    sync.Mutex
	store storage.Store
	key   string
}

func newCollection[T models.Record](store storage.Store, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

// load decodes the slot. An absent or empty slot is an empty collection.
func (c *collection[T]) load() ([]T, error) {
	raw, ok, err := c.store.Get(c.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("corrupt %s collection: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) save(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", c.key, err)
	}
	return c.store.Set(c.key, string(raw))
}

func (c *collection[T]) list() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *collection[T]) filter(keep func(T) bool) ([]T, error) {
	items, err := c.list()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// get returns nil when no record has the id.
func (c *collection[T]) get(id string) (*T, error) {
	items, err := c.list()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].GetID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (c *collection[T]) add(item T, prepend bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	if prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	return c.save(items)
}

// update applies mutate to the record with the id and saves the collection.
// It returns nil when no record has the id.
func (c *collection[T]) update(id string, mutate func(*T)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].GetID() != id {
			continue
		}
		mutate(&items[i])
		if err := c.save(items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, nil
}

// remove deletes the record with the id and reports whether it existed.
func (c *collection[T]) remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return false, err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.GetID() == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return false, nil
	}
	return true, c.save(kept)
}

// seed writes items only when the slot does not exist yet. A present slot is
// left alone even if it holds an empty array.
func (c *collection[T]) seed(items []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok, err := c.store.Get(c.key)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	return true, c.save(items)
}
