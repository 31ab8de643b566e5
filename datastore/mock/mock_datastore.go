/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the PolymorphicStore
// interface for testing
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/suparena/polyregistry"
	"github.com/suparena/polyregistry/datastore"
	"github.com/suparena/polyregistry/errors"
	"github.com/suparena/polyregistry/storagemodels"
)

// Store is an in-memory datastore.PolymorphicStore. It keeps the same raw
// item representation as the DynamoDB implementation, so reads exercise the
// full marshal-envelope-decode path through the kind registry.
type Store struct {
	mu          sync.RWMutex
	items       map[string]datastore.Item
	kinds       *datastore.KindRegistry
	putError    error
	deleteError error
}

// New creates a new mock Store backed by the given kind registry.
func New(kinds *datastore.KindRegistry) *Store {
	return &Store{
		items: make(map[string]datastore.Item),
		kinds: kinds,
	}
}

// WithPutError makes Put operations return an error
func (m *Store) WithPutError(err error) *Store {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *Store) WithDeleteError(err error) *Store {
	m.deleteError = err
	return m
}

// Put marshals the entity with the shared envelope and stores the raw item.
func (m *Store) Put(ctx context.Context, e datastore.Entity) error {
	if m.putError != nil {
		return m.putError
	}

	item, err := datastore.MarshalEnvelope(e)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[datastore.CompositeKey(e.EntityKind(), e.EntityKey())] = item
	return nil
}

// GetOne reconstructs the stored entity through the kind registry.
func (m *Store) GetOne(ctx context.Context, kind, key string) (*polyregistry.Handle[datastore.Entity], error) {
	m.mu.RLock()
	item, exists := m.items[datastore.CompositeKey(kind, key)]
	m.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError(kind, key)
	}
	return m.decode(item)
}

// Query decodes every stored item. The mock does not evaluate key condition
// expressions; tests that need filtering should use distinct stores.
func (m *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]*polyregistry.Handle[datastore.Entity], error) {
	snapshot := m.snapshot()
	handles := make([]*polyregistry.Handle[datastore.Entity], 0, len(snapshot))
	for _, item := range snapshot {
		h, err := m.decode(item)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// Stream sends every stored item over a channel, decoded through the kind
// registry, mirroring the ddb stream contract.
func (m *Store) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch := make(chan storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]], options.BufferSize)

	go func() {
		defer close(ch)

		var index int64
		for _, item := range m.snapshot() {
			h, err := m.decode(item)
			result := storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]]{
				Item:  h,
				Raw:   item,
				Error: err,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: 1,
					Timestamp:  time.Now(),
				},
			}
			select {
			case ch <- result:
				index++
			case <-ctx.Done():
				return
			}
			if err != nil && options.ErrorHandler != nil && !options.ErrorHandler(err) {
				return
			}
		}
	}()

	return ch
}

// Delete removes the stored item for the (kind, key) pair.
func (m *Store) Delete(ctx context.Context, kind, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, datastore.CompositeKey(kind, key))
	return nil
}

// Len returns the number of stored items.
func (m *Store) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

func (m *Store) decode(item datastore.Item) (*polyregistry.Handle[datastore.Entity], error) {
	kind, err := datastore.ItemKind(item)
	if err != nil {
		return nil, err
	}
	return m.kinds.Construct(kind, item)
}

func (m *Store) snapshot() []datastore.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]datastore.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	return items
}
