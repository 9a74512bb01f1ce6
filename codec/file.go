/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suparena/wpstore/errors"
)

// ToJSON marshals the whole graph of v to indented tagged JSON.
func (c *Codec) ToJSON(v any) ([]byte, error) {
	tree, err := c.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}

// FromJSON parses tagged JSON and decodes the top-level value.
func (c *Codec) FromJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse tagged JSON: %w", err)
	}
	return c.Decode(v)
}

// SaveFile writes v as tagged JSON. The file is replaced in one rename, so
// readers see either the old or the new document.
func (c *Codec) SaveFile(path string, v any) error {
	data, err := c.ToJSON(v)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// LoadFile reads a tagged JSON document and rebuilds its typed graph.
func (c *Codec) LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.FromJSON(data)
}

// LoadFileAs loads a document and asserts its top-level type.
func LoadFileAs[T any](c *Codec, path string) (T, error) {
	var zero T
	v, err := c.LoadFile(path)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.NewIntegrityError("unexpected document type", fmt.Sprintf("%s: want %T, got %T", path, zero, v))
	}
	return t, nil
}

// writeFileAtomic uses the temp-file, fsync, rename pattern.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".wpstore-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Encode encodes v with the default codec.
func Encode(v any) (any, error) { return Default.Encode(v) }

// Decode decodes v with the default codec.
func Decode(v any) (any, error) { return Default.Decode(v) }

// Marshal encodes the graph of v with the default codec.
func Marshal(v any) (any, error) { return Default.Marshal(v) }

// ToJSON marshals v to tagged JSON with the default codec.
func ToJSON(v any) ([]byte, error) { return Default.ToJSON(v) }

// FromJSON decodes tagged JSON with the default codec.
func FromJSON(data []byte) (any, error) { return Default.FromJSON(data) }

// SaveFile writes v to path with the default codec.
func SaveFile(path string, v any) error { return Default.SaveFile(path, v) }

// LoadFile reads path with the default codec.
func LoadFile(path string) (any, error) { return Default.LoadFile(path) }
