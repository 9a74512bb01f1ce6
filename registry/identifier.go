/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Identifier derives the stable identifier of a named type: its package path and
// type name joined by a dot, e.g. "github.com/suparena/wpstore/wp.Post".
// Pointer types use their element type. Unnamed types yield "".
func Identifier(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return TimestampIdentifier
	}
	if t.Name() == "" {
		return ""
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// IdentifierOf is Identifier for the dynamic type of v.
func IdentifierOf(v any) string {
	return Identifier(reflect.TypeOf(v))
}
