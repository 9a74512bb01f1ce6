/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// DecodeTagged replaces the container's contents with the tagged object data.
// self is the value registered for the tag, usually the named type embedding
// the container. JSON object keys and numbers are coerced back to K, item
// values are decoded through dec, and the rebuilt indexes must agree.
func (c *Container[K, T]) DecodeTagged(data map[string]any, dec registry.Decoder, self any) error {
	if err := record.CheckTag(data, self); err != nil {
		return err
	}

	rawItems, err := field[map[string]any](data, "items_by_id")
	if err != nil {
		return err
	}
	rawSlugs, err := field[map[string]any](data, "item_slug_map")
	if err != nil {
		return err
	}
	rawIndices, err := field[[]any](data, "item_indices")
	if err != nil {
		return err
	}

	itemsByID := make(map[K]T, len(rawItems))
	for k, v := range rawItems {
		key, err := coerceKey[K](k)
		if err != nil {
			return err
		}
		item, err := codec.DecodeAs[T](dec, v)
		if err != nil {
			return fmt.Errorf("items_by_id[%s]: %w", k, err)
		}
		itemsByID[key] = item
	}

	slugMap := make(map[string]K, len(rawSlugs))
	for slug, v := range rawSlugs {
		key, err := coerceKey[K](v)
		if err != nil {
			return err
		}
		slugMap[slug] = key
	}

	indices := make([]K, 0, len(rawIndices))
	for _, v := range rawIndices {
		key, err := coerceKey[K](v)
		if err != nil {
			return err
		}
		indices = append(indices, key)
	}

	c.itemsByID = itemsByID
	c.slugMap = slugMap
	c.indices = indices
	return c.Validate()
}

func field[V any](data map[string]any, name string) (V, error) {
	var zero V
	raw, ok := data[name]
	if !ok || raw == nil {
		return zero, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, errors.NewIntegrityError("malformed container field", fmt.Sprintf("%s is %T", name, raw))
	}
	return v, nil
}

func coerceKey[K comparable](v any) (K, error) {
	var zero K
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case int:
		out, err = cast.ToIntE(v)
	case int64:
		out, err = cast.ToInt64E(v)
	case string:
		out, err = cast.ToStringE(v)
	default:
		return zero, errors.NewIntegrityError("unsupported container key type", fmt.Sprintf("%T", zero))
	}
	if err != nil {
		return zero, errors.NewIntegrityError("malformed container key", err.Error())
	}
	return out.(K), nil
}
