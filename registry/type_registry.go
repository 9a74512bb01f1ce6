/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// TagKey is the JSON member that names the concrete type of a tagged object.
const TagKey = "type-tag"

// TimestampIdentifier is the fixed identifier of time.Time in tagged JSON.
const TimestampIdentifier = "datetime"

// Kind says how a registered type is rebuilt from its tagged form.
type Kind int

const (
	KindRecord Kind = iota + 1
	KindEnum
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindTimestamp:
		return "timestamp"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Decoder decodes one tagged JSON value. Record reconstruction functions use it
// for the nested fields they declare.
type Decoder interface {
	Decode(v any) (any, error)
}

// TaggedFunc rebuilds a record from its tagged object.
type TaggedFunc func(data map[string]any, dec Decoder) (any, error)

// NameFunc rebuilds an enum member from its name.
type NameFunc func(name string) (any, error)

// Entry is a single registered type.
type Entry struct {
	Identifier string
	Kind       Kind
	Type       reflect.Type
	FromTagged TaggedFunc
	FromName   NameFunc
}

// Registry maps stable identifiers to runtime types and their reconstruction
// functions. It is populated during initialization, typically in init().
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Entry
	byType map[reflect.Type]string
}

// New returns a registry that only knows the timestamp type.
func New() *Registry {
	r := &Registry{
		byID:   make(map[string]Entry),
		byType: make(map[reflect.Type]string),
	}
	r.Register(Entry{
		Identifier: TimestampIdentifier,
		Kind:       KindTimestamp,
		Type:       reflect.TypeOf(time.Time{}),
	})
	return r
}

// Default is the process-wide registry used by the codec and the domain packages.
var Default = New()

// Register adds an entry. If a type is already registered under the identifier,
// or the Go type is already registered under another identifier, it panics to
// prevent accidental overrides.
func (r *Registry) Register(e Entry) {
	if e.Identifier == "" || e.Type == nil {
		panic("type registry: entry needs an identifier and a type")
	}
	if e.Type.Kind() == reflect.Pointer {
		e.Type = e.Type.Elem()
	}
	switch e.Kind {
	case KindRecord:
		if e.FromTagged == nil {
			panic(fmt.Sprintf("type registry: record %q has no FromTagged", e.Identifier))
		}
	case KindEnum:
		if e.FromName == nil {
			panic(fmt.Sprintf("type registry: enum %q has no FromName", e.Identifier))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[e.Identifier]; exists {
		panic(fmt.Sprintf("type registry: type with identifier %q already registered", e.Identifier))
	}
	if other, exists := r.byType[e.Type]; exists {
		panic(fmt.Sprintf("type registry: %s already registered as %q", e.Type, other))
	}
	r.byID[e.Identifier] = e
	r.byType[e.Type] = e.Identifier
}

// Resolve returns the entry for an identifier. Unknown identifiers are not an
// error: callers treat them as plain data.
func (r *Registry) Resolve(identifier string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[identifier]
	return e, ok
}

// IdentifierFor returns the registered identifier for a value or a reflect.Type.
// Pointer types resolve to their element type.
func (r *Registry) IdentifierFor(v any) (string, bool) {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t == nil {
		return "", false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byType[t]
	return id, ok
}

// Entries returns a snapshot of all entries sorted by identifier.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// RegisterRecord registers the record type T with the default registry under
// its derived identifier.
func RegisterRecord[T any](fn func(data map[string]any, dec Decoder) (*T, error)) {
	RegisterRecordIn[T](Default, fn)
}

// RegisterRecordIn is RegisterRecord for an explicit registry.
func RegisterRecordIn[T any](r *Registry, fn func(data map[string]any, dec Decoder) (*T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.Register(Entry{
		Identifier: Identifier(t),
		Kind:       KindRecord,
		Type:       t,
		FromTagged: func(data map[string]any, dec Decoder) (any, error) {
			return fn(data, dec)
		},
	})
}

// RegisterEnum registers the enum type T with the default registry.
func RegisterEnum[T any](parse func(name string) (T, error)) {
	RegisterEnumIn[T](Default, parse)
}

// RegisterEnumIn is RegisterEnum for an explicit registry.
func RegisterEnumIn[T any](r *Registry, parse func(name string) (T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.Register(Entry{
		Identifier: Identifier(t),
		Kind:       KindEnum,
		Type:       t,
		FromName: func(name string) (any, error) {
			return parse(name)
		},
	})
}

// Resolve looks up an identifier in the default registry.
func Resolve(identifier string) (Entry, bool) {
	return Default.Resolve(identifier)
}

// IdentifierFor looks up a value or type in the default registry.
func IdentifierFor(v any) (string, bool) {
	return Default.IdentifierFor(v)
}
