/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"time"

	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

const (
	// TagKey names the concrete type of an encoded object.
	TagKey = registry.TagKey

	// TimestampLayout is the only timestamp form written and read: second
	// precision, UTC, trailing Z.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Enum is implemented by enumeration types. Encoded members carry both the
// name and the value; decoding uses the name.
type Enum interface {
	EnumName() string
	EnumValue() int
}

// Codec converts typed values to tagged JSON-compatible values and back,
// dispatching on the identifiers of a registry.
type Codec struct {
	reg *registry.Registry
}

// New creates a codec over the given registry.
func New(reg *registry.Registry) *Codec {
	return &Codec{reg: reg}
}

// Default uses registry.Default.
var Default = New(registry.Default)

// Registry returns the registry the codec resolves tags with.
func (c *Codec) Registry() *registry.Registry {
	return c.reg
}

// Encode converts one value. Records become their raw fields plus a type tag,
// enum members become {type-tag, name, value}, and timestamps become
// {type-tag: "datetime", value}. Everything else is returned unchanged.
// Encode does not descend into the result; see Marshal.
func (c *Codec) Encode(v any) (any, error) {
	if v == nil || isNilPointer(v) {
		return nil, nil
	}

	switch x := v.(type) {
	case time.Time:
		return encodeTime(x)
	case *time.Time:
		return encodeTime(*x)
	case Enum:
		id, ok := c.reg.IdentifierFor(v)
		if !ok {
			return nil, errors.NewIntegrityError("unregistered enum type", fmt.Sprintf("%T", v))
		}
		return map[string]any{
			TagKey:  id,
			"name":  x.EnumName(),
			"value": x.EnumValue(),
		}, nil
	case record.Record:
		id, ok := c.reg.IdentifierFor(v)
		if !ok {
			return nil, errors.NewIntegrityError("unregistered record type", fmt.Sprintf("%T", v))
		}
		raw := x.ToRaw()
		out := make(map[string]any, len(raw)+1)
		maps.Copy(out, raw)
		out[TagKey] = id
		return out, nil
	}
	return v, nil
}

func encodeTime(t time.Time) (any, error) {
	// A zero time carries no instant and no zone; it is the Go form of a
	// timestamp without timezone information.
	if t.IsZero() {
		return nil, errors.NewNaiveTimestampError("")
	}
	return map[string]any{
		TagKey:  registry.TimestampIdentifier,
		"value": t.UTC().Format(TimestampLayout),
	}, nil
}

// Decode converts one tagged value back to its type. Values that are not
// objects, objects without a tag, and objects whose tag is not registered are
// returned unchanged. Record reconstruction decodes the record's own nested
// fields; Decode itself does not descend.
func (c *Codec) Decode(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	tag, ok := m[TagKey].(string)
	if !ok {
		return v, nil
	}
	entry, ok := c.reg.Resolve(tag)
	if !ok {
		return v, nil
	}

	switch entry.Kind {
	case registry.KindTimestamp:
		s, _ := m["value"].(string)
		t, err := time.Parse(TimestampLayout, s)
		if err != nil {
			return nil, errors.NewIntegrityError("malformed timestamp", err.Error())
		}
		return t.UTC(), nil
	case registry.KindEnum:
		name, _ := m["name"].(string)
		member, err := entry.FromName(name)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", tag, err)
		}
		return member, nil
	case registry.KindRecord:
		return entry.FromTagged(m, c)
	}
	return v, nil
}

// Marshal encodes a whole value graph: every map, slice, record, enum and
// timestamp reachable from v. Map keys are rendered as strings.
func (c *Codec) Marshal(v any) (any, error) {
	enc, err := c.Encode(v)
	if err != nil {
		return nil, err
	}

	switch x := enc.(type) {
	case nil, string, bool, float64, int:
		return x, nil
	case map[string]any:
		if x == nil {
			return nil, nil
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			if out[k], err = c.Marshal(val); err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
		}
		return out, nil
	case []any:
		if x == nil {
			return nil, nil
		}
		out := make([]any, len(x))
		for i, val := range x {
			if out[i], err = c.Marshal(val); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return out, nil
	}

	rv := reflect.ValueOf(enc)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return c.Marshal(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := keyString(iter.Key())
			if out[k], err = c.Marshal(iter.Value().Interface()); err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
		}
		return out, nil
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return enc, nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			if out[i], err = c.Marshal(rv.Index(i).Interface()); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return out, nil
	}
	return enc, nil
}

// DecodeAs decodes v and asserts the result to T. A nil value yields the zero T,
// and a value that is already a T is returned as is.
func DecodeAs[T any](dec registry.Decoder, v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	out, err := dec.Decode(v)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	t, ok := out.(T)
	if !ok {
		return zero, errors.NewIntegrityError("unexpected decoded type", fmt.Sprintf("want %T, got %T", zero, out))
	}
	return t, nil
}

// DecodeMapAs decodes every value of a tagged object map.
func DecodeMapAs[T any](dec registry.Decoder, v any) (map[string]T, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.NewIntegrityError("expected an object", fmt.Sprintf("got %T", v))
	}
	out := make(map[string]T, len(m))
	for k, val := range m {
		t, err := DecodeAs[T](dec, val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = t
	}
	return out, nil
}

// DecodeSliceAs decodes every element of a tagged array.
func DecodeSliceAs[T any](dec registry.Decoder, v any) ([]T, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.([]any)
	if !ok {
		return nil, errors.NewIntegrityError("expected an array", fmt.Sprintf("got %T", v))
	}
	out := make([]T, len(s))
	for i, val := range s {
		t, err := DecodeAs[T](dec, val)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func keyString(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}
