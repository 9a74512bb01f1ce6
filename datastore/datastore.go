/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/storagemodels"
)

// DataStore persists snapshots of Records and Containers under string keys.
// Values always travel in tagged encoding, so Load returns the same concrete
// type that was saved.
type DataStore interface {
	Save(ctx context.Context, key string, v any, opts ...storagemodels.SaveOption) error

	Load(ctx context.Context, key string) (any, error)

	Delete(ctx context.Context, key string) error

	List(ctx context.Context, opts ...storagemodels.ListOption) ([]storagemodels.SnapshotInfo, error)
}

// ValidateKey rejects keys that cannot name a snapshot on every backend.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return errors.NewValidationError("key", "must not be empty")
	case strings.ContainsAny(key, `/\#`):
		return errors.NewValidationError("key", fmt.Sprintf("%q contains a reserved character", key))
	case key == "." || key == ".." || strings.HasPrefix(key, "."):
		return errors.NewValidationError("key", fmt.Sprintf("%q must not start with a dot", key))
	}
	return nil
}

// Encode builds the stored form of v. The value's type must be registered with
// the codec's registry.
func Encode(c *codec.Codec, key string, v any) (storagemodels.SnapshotItem, error) {
	if err := ValidateKey(key); err != nil {
		return storagemodels.SnapshotItem{}, err
	}
	entityType, ok := c.Registry().IdentifierFor(v)
	if !ok {
		return storagemodels.SnapshotItem{}, errors.NewValidationError("value", fmt.Sprintf("%T is not a registered type", v))
	}
	body, err := c.ToJSON(v)
	if err != nil {
		return storagemodels.SnapshotItem{}, fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}
	return storagemodels.SnapshotItem{
		Key:        key,
		EntityType: entityType,
		Body:       string(body),
		SavedAt:    time.Now().UTC().Truncate(time.Second),
	}, nil
}

// Decode rebuilds the value of a stored snapshot and checks it against the
// recorded entity type.
func Decode(c *codec.Codec, item storagemodels.SnapshotItem) (any, error) {
	v, err := c.FromJSON([]byte(item.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", item.Key, err)
	}
	if got, _ := c.Registry().IdentifierFor(v); got != item.EntityType {
		return nil, errors.NewTagMismatchError(item.EntityType, got)
	}
	return v, nil
}
