/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package file

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/registry"
	"github.com/suparena/wpstore/storagemodels"
)

const extension = ".json"

// Store keeps each snapshot as <dir>/<key>.json.
type Store struct {
	dir   string
	codec *codec.Codec
	mu    sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithCodec replaces codec.Default.
func WithCodec(c *codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

var _ datastore.DataStore = (*Store)(nil)

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.NewValidationError("dir", "must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	s := &Store{dir: dir, codec: codec.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+extension)
}

// Save writes v atomically. With WithCreateOnly an existing snapshot is left
// untouched and a ConditionFailedError is returned.
func (s *Store) Save(ctx context.Context, key string, v any, opts ...storagemodels.SaveOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := datastore.ValidateKey(key); err != nil {
		return err
	}
	o := storagemodels.ApplySaveOptions(opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.path(key)
	if o.CreateOnly {
		if _, err := os.Stat(path); err == nil {
			return errors.NewConditionFailedError("save", "snapshot does not exist")
		}
	}
	if _, ok := s.codec.Registry().IdentifierFor(v); !ok {
		return errors.NewValidationError("value", fmt.Sprintf("%T is not a registered type", v))
	}
	return s.codec.SaveFile(path, v)
}

// Load reads and decodes a snapshot.
func (s *Store) Load(ctx context.Context, key string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := datastore.ValidateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewNotFoundError("snapshot", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return s.codec.FromJSON(data)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := datastore.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.NewNotFoundError("snapshot", key)
	}
	return err
}

// List returns the snapshots in the directory sorted by key. The entity type
// is read from the document's top-level tag; SavedAt is the file's mtime.
func (s *Store) List(ctx context.Context, opts ...storagemodels.ListOption) ([]storagemodels.SnapshotInfo, error) {
	o := storagemodels.ApplyListOptions(opts...)
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var out []storagemodels.SnapshotInfo
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, extension) || strings.HasPrefix(name, ".") {
			continue
		}
		key := strings.TrimSuffix(name, extension)
		if !strings.HasPrefix(key, o.Prefix) {
			continue
		}
		info, err := s.describe(key)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *Store) describe(key string) (storagemodels.SnapshotInfo, error) {
	path := s.path(key)
	fi, err := os.Stat(path)
	if err != nil {
		return storagemodels.SnapshotInfo{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return storagemodels.SnapshotInfo{}, err
	}
	var head map[string]json.RawMessage
	if err := json.Unmarshal(data, &head); err != nil {
		return storagemodels.SnapshotInfo{}, fmt.Errorf("snapshot %q is not a tagged object: %w", key, err)
	}
	var tag string
	if raw, ok := head[registry.TagKey]; ok {
		if err := json.Unmarshal(raw, &tag); err != nil {
			return storagemodels.SnapshotInfo{}, fmt.Errorf("snapshot %q has a malformed type tag: %w", key, err)
		}
	}
	return storagemodels.SnapshotInfo{
		Key:        key,
		EntityType: tag,
		SavedAt:    fi.ModTime().UTC(),
	}, nil
}
