/*
Package registry maps stable type identifiers to runtime types for wpstore's
tagged JSON encoding.

Identifiers are derived from the package path and type name, so they are stable
across process runs and unique within a program:

	registry.Identifier(reflect.TypeOf(wp.Post{}))
	// "github.com/suparena/wpstore/wp.Post"

The timestamp type (time.Time) is always registered as "datetime".

Records register a reconstruction function that receives the tagged object and a
Decoder for the nested fields the record declares:

	registry.RegisterRecord(func(data map[string]any, dec registry.Decoder) (*Post, error) {
	    ...
	})

Enums register a parser from the member name:

	registry.RegisterEnum(ParseStatus)

Resolving an unknown identifier is not an error; the codec passes such objects
through unchanged. Registering the same identifier twice panics.

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
