/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

import (
	"iter"

	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
)

// Dict is a container read by identity key.
type Dict[K comparable, T record.Keyed] struct {
	Container[K, T]
}

// NewDict returns an empty dict. Embed the result by value in a named type.
func NewDict[K comparable, T record.Keyed](opts Options[K, T]) Dict[K, T] {
	if opts.New == nil || opts.KeyOf == nil {
		panic("container: Options.New and Options.KeyOf are required")
	}
	return Dict[K, T]{Container: makeContainer(opts)}
}

// Get returns the item with the key. Unlike GetByID there is no default: a
// missing key is an integrity failure.
func (d *Dict[K, T]) Get(key K) (T, error) {
	item, ok := d.itemsByID[key]
	if !ok {
		var zero T
		return zero, errors.NewKeyError(key)
	}
	return item, nil
}

// Has reports whether the key is present.
func (d *Dict[K, T]) Has(key K) bool {
	_, ok := d.itemsByID[key]
	return ok
}

// Values returns the items in insertion order.
func (d *Dict[K, T]) Values() []T {
	out := make([]T, 0, len(d.indices))
	for _, key := range d.indices {
		out = append(out, d.itemsByID[key])
	}
	return out
}

// Items iterates key and item pairs in insertion order.
func (d *Dict[K, T]) Items() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for _, key := range d.indices {
			if !yield(key, d.itemsByID[key]) {
				return
			}
		}
	}
}
