/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wpstore

import (
	"sort"
	"sync"

	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
)

// Storage manages a collection of named DataStore instances, for example a
// local "file" store next to a shared "ddb" store.
type Storage interface {
	// RegisterDataStore registers a DataStore under a given name.
	RegisterDataStore(name string, ds datastore.DataStore) error
	// GetDataStore retrieves the registered DataStore for a given name.
	GetDataStore(name string) (datastore.DataStore, error)
	// RemoveDataStore unregisters a DataStore.
	RemoveDataStore(name string) error
	// ListDataStores returns the registered names in sorted order.
	ListDataStores() []string
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]datastore.DataStore
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]datastore.DataStore),
	}
}

// RegisterDataStore stores the provided DataStore under the given name.
func (sm *storageManager) RegisterDataStore(name string, ds datastore.DataStore) error {
	if ds == nil {
		return errors.NewValidationError("datastore", "must not be nil")
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[name]; exists {
		return errors.NewAlreadyExistsError("datastore", name)
	}
	sm.stores[name] = ds
	return nil
}

// GetDataStore retrieves the DataStore associated with the given name.
func (sm *storageManager) GetDataStore(name string) (datastore.DataStore, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ds, exists := sm.stores[name]
	if !exists {
		return nil, errors.NewNotFoundError("datastore", name)
	}
	return ds, nil
}

func (sm *storageManager) RemoveDataStore(name string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[name]; !exists {
		return errors.NewNotFoundError("datastore", name)
	}
	delete(sm.stores, name)
	return nil
}

func (sm *storageManager) ListDataStores() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	names := make([]string, 0, len(sm.stores))
	for name := range sm.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
