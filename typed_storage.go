/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wpstore

import (
	"context"
	"fmt"

	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/storagemodels"
)

// TypedStore restricts a DataStore to snapshots of one type, e.g.
// TypedStore[*wp.PostList].
type TypedStore[T any] struct {
	ds datastore.DataStore
}

// NewTypedStore wraps ds.
func NewTypedStore[T any](ds datastore.DataStore) *TypedStore[T] {
	return &TypedStore[T]{ds: ds}
}

// Save stores v under key.
func (ts *TypedStore[T]) Save(ctx context.Context, key string, v T, opts ...storagemodels.SaveOption) error {
	return ts.ds.Save(ctx, key, v, opts...)
}

// Load returns the snapshot under key, failing if it holds another type.
func (ts *TypedStore[T]) Load(ctx context.Context, key string) (T, error) {
	return LoadAs[T](ctx, ts.ds, key)
}

func (ts *TypedStore[T]) Delete(ctx context.Context, key string) error {
	return ts.ds.Delete(ctx, key)
}

// LoadAs loads a snapshot and asserts its type. A snapshot of another type is
// an integrity violation.
func LoadAs[T any](ctx context.Context, ds datastore.DataStore, key string) (T, error) {
	var zero T
	v, err := ds.Load(ctx, key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.NewIntegrityError("unexpected snapshot type", fmt.Sprintf("%s: want %T, got %T", key, zero, v))
	}
	return t, nil
}

// GetTypedStore looks up a named datastore and wraps it for T.
func GetTypedStore[T any](s Storage, name string) (*TypedStore[T], error) {
	ds, err := s.GetDataStore(name)
	if err != nil {
		return nil, err
	}
	return NewTypedStore[T](ds), nil
}
