/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wpstore

import (
	"context"
	"sync"
	"testing"

	"github.com/suparena/wpstore/datastore/mock"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/wp"
)

func TestStorageManager(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		sm := NewStorageManager()

		// Register datastore
		err := sm.RegisterDataStore("local", mock.New())
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get datastore
		retrieved, err := sm.GetDataStore("local")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved store is nil")
		}

		// List datastores
		names := sm.ListDataStores()
		if len(names) != 1 || names[0] != "local" {
			t.Fatalf("Expected [local], got %v", names)
		}

		// Remove datastore
		err = sm.RemoveDataStore("local")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		// Verify removal
		_, err = sm.GetDataStore("local")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found after removal, got %v", err)
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		sm := NewStorageManager()

		if err := sm.RegisterDataStore("local", mock.New()); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}
		err := sm.RegisterDataStore("local", mock.New())
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("Expected duplicate registration error, got %v", err)
		}
	})

	t.Run("NilDataStore", func(t *testing.T) {
		sm := NewStorageManager()
		if err := sm.RegisterDataStore("nil", nil); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})

	t.Run("SortedNames", func(t *testing.T) {
		sm := NewStorageManager()
		for _, name := range []string{"file", "ddb", "mock"} {
			if err := sm.RegisterDataStore(name, mock.New()); err != nil {
				t.Fatalf("Register %s failed: %v", name, err)
			}
		}
		names := sm.ListDataStores()
		if len(names) != 3 || names[0] != "ddb" || names[1] != "file" || names[2] != "mock" {
			t.Fatalf("Expected sorted names, got %v", names)
		}
	})
}

func TestStorageManagerConcurrency(t *testing.T) {
	sm := NewStorageManager()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i))
			if err := sm.RegisterDataStore(name, mock.New()); err != nil {
				t.Errorf("Register %s failed: %v", name, err)
			}
			if _, err := sm.GetDataStore(name); err != nil {
				t.Errorf("Get %s failed: %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(sm.ListDataStores()); got != 10 {
		t.Fatalf("Expected 10 datastores, got %d", got)
	}
}

func TestTypedStore(t *testing.T) {
	ctx := context.Background()
	sm := NewStorageManager()
	if err := sm.RegisterDataStore("mock", mock.New()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	authors, err := wp.CreateAuthors([]any{
		map[string]any{"id": 3, "name": "Ada", "slug": "ada"},
	})
	if err != nil {
		t.Fatalf("CreateAuthors failed: %v", err)
	}

	store, err := GetTypedStore[*wp.Authors](sm, "mock")
	if err != nil {
		t.Fatalf("GetTypedStore failed: %v", err)
	}
	if err := store.Save(ctx, "authors", authors); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "authors")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ada := loaded.GetBySlug("ada", nil)
	if ada == nil || ada.ID != 3 {
		t.Fatalf("Expected author 3 by slug, got %+v", ada)
	}

	// The same snapshot read as another type is rejected.
	posts := NewTypedStore[*wp.PostList](store.ds)
	if _, err := posts.Load(ctx, "authors"); !errors.IsIntegrity(err) {
		t.Fatalf("Expected integrity error, got %v", err)
	}

	if err := store.Delete(ctx, "authors"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "authors"); !errors.IsNotFound(err) {
		t.Fatalf("Expected not found, got %v", err)
	}

	if _, err := GetTypedStore[*wp.Authors](sm, "missing"); !errors.IsNotFound(err) {
		t.Fatalf("Expected not found for missing datastore, got %v", err)
	}
}

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version || info.GoVersion == "" {
		t.Fatalf("Unexpected version info %+v", info)
	}
}
