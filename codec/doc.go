/*
Package codec implements wpstore's self-describing JSON encoding.

Every record, enum member and timestamp is written as an object carrying a
"type-tag" member that names its concrete type through the registry:

	{"type-tag": "github.com/suparena/wpstore/wp.Status", "name": "publish", "value": 1}
	{"type-tag": "datetime", "value": "2024-03-01T12:00:00Z"}

Encode and Decode handle a single value. Marshal walks a whole graph and is what
ToJSON and SaveFile use. Decoding is driven by the records themselves: each
registered record rebuilds its own nested fields through the Decoder it is
handed, usually with DecodeAs, DecodeMapAs or DecodeSliceAs.

Objects without a tag, or with a tag the registry does not know, are plain
data and decode to themselves.
*/
package codec
