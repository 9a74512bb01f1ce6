/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

import (
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
)

// List is a container read positionally.
type List[K comparable, T record.Keyed] struct {
	Container[K, T]
}

// NewList returns an empty list. Embed the result by value in a named type.
func NewList[K comparable, T record.Keyed](opts Options[K, T]) List[K, T] {
	if opts.New == nil || opts.KeyOf == nil {
		panic("container: Options.New and Options.KeyOf are required")
	}
	return List[K, T]{Container: makeContainer(opts)}
}

// At returns the item at position i.
func (l *List[K, T]) At(i int) (T, error) {
	return l.GetByIndex(i)
}

// Slice returns the items in positions [lo, hi). Negative bounds count from
// the end.
func (l *List[K, T]) Slice(lo, hi int) ([]T, error) {
	n := len(l.indices)
	from, to := lo, hi
	if from < 0 {
		from += n
	}
	if to < 0 {
		to += n
	}
	if from < 0 || from > n {
		return nil, errors.NewIndexError(lo, n)
	}
	if to < from || to > n {
		return nil, errors.NewIndexError(hi, n)
	}
	out := make([]T, 0, to-from)
	for _, key := range l.indices[from:to] {
		out = append(out, l.itemsByID[key])
	}
	return out, nil
}

// Items returns all items in insertion order.
func (l *List[K, T]) Items() []T {
	out := make([]T, 0, len(l.indices))
	for item := range l.All() {
		out = append(out, item)
	}
	return out
}
