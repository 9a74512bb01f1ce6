/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package record defines the capability set shared by every structured entity:
// construction from untyped API data, projection back to raw fields, and
// reconstruction from the tagged persistence form.
package record

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/registry"
)

// Record is a typed entity mappable to and from JSON.
//
// ToRaw projects every declared field, keyed by its declared JSON name. Nested
// records, enums and timestamps stay typed; flattening them is the codec's job.
type Record interface {
	ToRaw() map[string]any
}

// Keyed is a record that can live in a container.
type Keyed interface {
	Record
	GetSlug() string
}

// FromRaw fills the struct pointed to by out from untyped data, matching keys
// against the struct's json field names. Keys the struct does not declare are
// dropped. Keys listed in skip are left for the caller to convert.
func FromRaw(data map[string]any, out any, skip ...string) error {
	if err := decode(without(data, skip), out); err != nil {
		return fmt.Errorf("failed to build %T: %w", out, err)
	}
	return nil
}

// FromTagged fills out from a tagged object. The object's type tag must equal
// the identifier of out's type. Fields listed in skip hold nested tagged values
// that the caller decodes explicitly.
func FromTagged(data map[string]any, out any, skip ...string) error {
	if err := CheckTag(data, out); err != nil {
		return err
	}
	if err := decode(without(data, append([]string{registry.TagKey}, skip...)), out); err != nil {
		return fmt.Errorf("failed to rebuild %T: %w", out, err)
	}
	return nil
}

// CheckTag verifies that data is tagged with the identifier of v's type.
func CheckTag(data map[string]any, v any) error {
	expected := registry.Identifier(reflect.TypeOf(v))
	actual, _ := data[registry.TagKey].(string)
	if actual != expected {
		return errors.NewTagMismatchError(expected, actual)
	}
	return nil
}

// Clone returns a shallow copy so constructors can rename keys without
// touching the caller's map.
func Clone(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return maps.Clone(data)
}

func without(data map[string]any, skip []string) map[string]any {
	if len(skip) == 0 {
		return data
	}
	out := Clone(data)
	for _, k := range skip {
		delete(out, k)
	}
	return out
}

func decode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
