/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface for testing
package mock

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore for testing.
// Values are encoded through the codec on Save and decoded on Load, so a
// round trip exercises the same tagged form as the real backends.
type DataStore struct {
	mu          sync.RWMutex
	codec       *codec.Codec
	data        map[string]storagemodels.SnapshotItem
	saveError   error
	loadError   error
	deleteError error
	listFunc    func(ctx context.Context, opts storagemodels.ListOptions) ([]storagemodels.SnapshotInfo, error)
}

var _ datastore.DataStore = (*DataStore)(nil)

// New creates a new mock DataStore over codec.Default
func New() *DataStore {
	return &DataStore{
		codec: codec.Default,
		data:  make(map[string]storagemodels.SnapshotItem),
	}
}

// WithCodec sets the codec used to encode and decode snapshots
func (m *DataStore) WithCodec(c *codec.Codec) *DataStore {
	m.codec = c
	return m
}

// WithListFunc sets a custom list function for testing
func (m *DataStore) WithListFunc(f func(ctx context.Context, opts storagemodels.ListOptions) ([]storagemodels.SnapshotInfo, error)) *DataStore {
	m.listFunc = f
	return m
}

// WithSaveError makes Save operations return an error
func (m *DataStore) WithSaveError(err error) *DataStore {
	m.saveError = err
	return m
}

// WithLoadError makes Load operations return an error
func (m *DataStore) WithLoadError(err error) *DataStore {
	m.loadError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	m.deleteError = err
	return m
}

// Save encodes v and stores it under key
func (m *DataStore) Save(ctx context.Context, key string, v any, opts ...storagemodels.SaveOption) error {
	if m.saveError != nil {
		return m.saveError
	}
	o := storagemodels.ApplySaveOptions(opts...)

	item, err := datastore.Encode(m.codec, key, v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; exists && o.CreateOnly {
		return errors.NewConditionFailedError("save", "snapshot does not exist")
	}
	m.data[key] = item
	return nil
}

// Load decodes the snapshot stored under key
func (m *DataStore) Load(ctx context.Context, key string) (any, error) {
	if m.loadError != nil {
		return nil, m.loadError
	}

	m.mu.RLock()
	item, exists := m.data[key]
	m.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("snapshot", key)
	}
	return datastore.Decode(m.codec, item)
}

// Delete removes a snapshot by key
func (m *DataStore) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.NewNotFoundError("snapshot", key)
	}

	delete(m.data, key)
	return nil
}

// List returns the stored snapshots sorted by key
func (m *DataStore) List(ctx context.Context, opts ...storagemodels.ListOption) ([]storagemodels.SnapshotInfo, error) {
	o := storagemodels.ApplyListOptions(opts...)
	if m.listFunc != nil {
		return m.listFunc(ctx, o)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]storagemodels.SnapshotInfo, 0, len(m.data))
	for key, item := range m.data {
		if strings.HasPrefix(key, o.Prefix) {
			results = append(results, item.Info())
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Key < results[j].Key })
	return results, nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore) SetData(data map[string]storagemodels.SnapshotItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore) GetData() map[string]storagemodels.SnapshotItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// Count returns the number of stored snapshots
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]storagemodels.SnapshotItem)
}
