/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
)

// Options fixes the item type of a container instance.
type Options[K comparable, T record.Keyed] struct {
	// New builds an item from one untyped API object.
	New func(data map[string]any) (T, error)
	// KeyOf derives the identity key of an item.
	KeyOf func(item T) K
}

// Container owns records indexed by identity key and by slug, and remembers
// insertion order. It is not safe for concurrent writers.
type Container[K comparable, T record.Keyed] struct {
	itemsByID map[K]T
	slugMap   map[string]K
	indices   []K
	opts      Options[K, T]
}

// New returns an empty container.
func New[K comparable, T record.Keyed](opts Options[K, T]) *Container[K, T] {
	if opts.New == nil || opts.KeyOf == nil {
		panic("container: Options.New and Options.KeyOf are required")
	}
	c := makeContainer(opts)
	return &c
}

func makeContainer[K comparable, T record.Keyed](opts Options[K, T]) Container[K, T] {
	return Container[K, T]{
		itemsByID: make(map[K]T),
		slugMap:   make(map[string]K),
		opts:      opts,
	}
}

// Create builds a container from one page of items, each a T or an untyped
// API object.
func Create[K comparable, T record.Keyed](opts Options[K, T], rows []any) (*Container[K, T], error) {
	c := New(opts)
	if err := c.Extend(rows); err != nil {
		return nil, err
	}
	return c, nil
}

// Append inserts an item given either as a T or as an untyped API object and
// returns the stored item. A slug or identity key that is already present is
// an integrity violation and leaves the container unchanged.
func (c *Container[K, T]) Append(v any) (T, error) {
	var zero T
	var item T
	switch x := v.(type) {
	case T:
		item = x
	case map[string]any:
		built, err := c.opts.New(x)
		if err != nil {
			return zero, err
		}
		item = built
	default:
		return zero, errors.NewValidationError("item", fmt.Sprintf("cannot append %T to a container of %T", v, zero))
	}

	key := c.opts.KeyOf(item)
	slug := item.GetSlug()
	if existing, ok := c.slugMap[slug]; ok {
		return zero, errors.NewDuplicateSlugError(slug, existing)
	}
	if _, ok := c.itemsByID[key]; ok {
		return zero, errors.NewAlreadyExistsError(fmt.Sprintf("%T", zero), fmt.Sprint(key))
	}

	c.itemsByID[key] = item
	c.slugMap[slug] = key
	c.indices = append(c.indices, key)
	return item, nil
}

// Extend appends every row in order, stopping at the first failure. Rows
// appended before the failure stay in the container.
func (c *Container[K, T]) Extend(rows []any) error {
	for i, row := range rows {
		if _, err := c.Append(row); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// ExtendItems appends already built items in order.
func (c *Container[K, T]) ExtendItems(items ...T) error {
	for i, item := range items {
		if _, err := c.Append(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID returns the item with the key, or def.
func (c *Container[K, T]) GetByID(key K, def T) T {
	if item, ok := c.itemsByID[key]; ok {
		return item
	}
	return def
}

// GetBySlug returns the item with the slug, or def.
func (c *Container[K, T]) GetBySlug(slug string, def T) T {
	key, ok := c.slugMap[slug]
	if !ok {
		return def
	}
	return c.GetByID(key, def)
}

// Lookup is GetByID with a presence flag.
func (c *Container[K, T]) Lookup(key K) (T, bool) {
	item, ok := c.itemsByID[key]
	return item, ok
}

// GetByIndex returns the item at a position of the insertion order. Negative
// positions count from the end.
func (c *Container[K, T]) GetByIndex(i int) (T, error) {
	var zero T
	n := len(c.indices)
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return zero, errors.NewIndexError(i, n)
	}
	return c.itemsByID[c.indices[pos]], nil
}

// Len returns the number of items.
func (c *Container[K, T]) Len() int {
	return len(c.itemsByID)
}

// All iterates items in insertion order.
func (c *Container[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, key := range c.indices {
			if !yield(c.itemsByID[key]) {
				return
			}
		}
	}
}

// Keys returns the identity keys in insertion order.
func (c *Container[K, T]) Keys() []K {
	return slices.Clone(c.indices)
}

// Slugs returns the slugs in insertion order.
func (c *Container[K, T]) Slugs() []string {
	out := make([]string, 0, len(c.indices))
	for _, key := range c.indices {
		out = append(out, c.itemsByID[key].GetSlug())
	}
	return out
}

// Validate checks that the three indexes agree with each other.
func (c *Container[K, T]) Validate() error {
	if len(c.indices) != len(c.itemsByID) || len(c.slugMap) != len(c.itemsByID) {
		return errors.NewIntegrityError("container indexes disagree",
			fmt.Sprintf("%d ordered keys, %d items, %d slugs", len(c.indices), len(c.itemsByID), len(c.slugMap)))
	}
	seen := make(map[K]struct{}, len(c.indices))
	for _, key := range c.indices {
		if _, ok := c.itemsByID[key]; !ok {
			return errors.NewIntegrityError("ordered key without item", fmt.Sprint(key))
		}
		if _, ok := seen[key]; ok {
			return errors.NewIntegrityError("key ordered twice", fmt.Sprint(key))
		}
		seen[key] = struct{}{}
	}
	for slug, key := range c.slugMap {
		item, ok := c.itemsByID[key]
		if !ok {
			return errors.NewIntegrityError("slug without item", slug)
		}
		if item.GetSlug() != slug {
			return errors.NewIntegrityError("slug index out of date", fmt.Sprintf("%q maps to %v whose slug is %q", slug, key, item.GetSlug()))
		}
	}
	return nil
}

// ToRaw projects the container's three indexes.
func (c *Container[K, T]) ToRaw() map[string]any {
	return map[string]any{
		"items_by_id":   maps.Clone(c.itemsByID),
		"item_slug_map": maps.Clone(c.slugMap),
		"item_indices":  slices.Clone(c.indices),
	}
}
