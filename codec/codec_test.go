/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

type color int

const (
	red color = iota + 1
	blue
)

func (c color) EnumName() string {
	switch c {
	case red:
		return "red"
	case blue:
		return "blue"
	}
	return ""
}

func (c color) EnumValue() int { return int(c) }

func parseColor(name string) (color, error) {
	switch name {
	case "red":
		return red, nil
	case "blue":
		return blue, nil
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

type swatch struct {
	Name  string    `json:"name"`
	Color color     `json:"color"`
	Made  time.Time `json:"made"`
}

func (s *swatch) ToRaw() map[string]any {
	return map[string]any{"name": s.Name, "color": s.Color, "made": s.Made}
}

func swatchFromTagged(data map[string]any, dec registry.Decoder) (*swatch, error) {
	s := &swatch{}
	if err := record.FromTagged(data, s, "color", "made"); err != nil {
		return nil, err
	}
	var err error
	if s.Color, err = codec.DecodeAs[color](dec, data["color"]); err != nil {
		return nil, err
	}
	if s.Made, err = codec.DecodeAs[time.Time](dec, data["made"]); err != nil {
		return nil, err
	}
	return s, nil
}

type palette struct {
	Slug     string             `json:"slug"`
	Swatches []*swatch          `json:"swatches"`
	ByName   map[string]*swatch `json:"by_name"`
	Extra    map[string]any     `json:"extra"`
}

func (p *palette) ToRaw() map[string]any {
	return map[string]any{"slug": p.Slug, "swatches": p.Swatches, "by_name": p.ByName, "extra": p.Extra}
}

func paletteFromTagged(data map[string]any, dec registry.Decoder) (*palette, error) {
	p := &palette{}
	if err := record.FromTagged(data, p, "swatches", "by_name"); err != nil {
		return nil, err
	}
	var err error
	if p.Swatches, err = codec.DecodeSliceAs[*swatch](dec, data["swatches"]); err != nil {
		return nil, err
	}
	if p.ByName, err = codec.DecodeMapAs[*swatch](dec, data["by_name"]); err != nil {
		return nil, err
	}
	return p, nil
}

type unregistered struct{}

func (unregistered) ToRaw() map[string]any { return map[string]any{} }

func newCodec() *codec.Codec {
	reg := registry.New()
	registry.RegisterEnumIn(reg, parseColor)
	registry.RegisterRecordIn(reg, swatchFromTagged)
	registry.RegisterRecordIn(reg, paletteFromTagged)
	return codec.New(reg)
}

var march1 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTimestampPrecision(t *testing.T) {
	c := newCodec()

	enc, err := c.Encode(march1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		codec.TagKey: "datetime",
		"value":      "2024-03-01T12:00:00Z",
	}, enc)

	dec, err := c.Decode(enc)
	require.NoError(t, err)
	got, ok := dec.(time.Time)
	require.True(t, ok, "expected time.Time, got %T", dec)
	assert.True(t, got.Equal(march1))
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2024-03-01T12:00:00+00:00", got.Format("2006-01-02T15:04:05-07:00"))
}

func TestTimestampConvertedToUTC(t *testing.T) {
	c := newCodec()
	local := time.Date(2024, 3, 1, 14, 0, 0, 999, time.FixedZone("CEST", 2*60*60))

	enc, err := c.Encode(local)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", enc.(map[string]any)["value"])
}

func TestTimestampWithoutTimezoneFails(t *testing.T) {
	c := newCodec()

	_, err := c.Encode(time.Time{})
	require.Error(t, err)
	assert.True(t, errors.IsIntegrity(err))

	_, err = c.Marshal(&swatch{Name: "unset", Color: red})
	require.Error(t, err)
	assert.True(t, errors.IsIntegrity(err))
}

func TestDecodePassthrough(t *testing.T) {
	c := newCodec()

	plain := map[string]any{"foo": "bar"}
	got, err := c.Decode(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	unknown := map[string]any{codec.TagKey: "nonexistent.Type", "x": float64(1)}
	got, err = c.Decode(unknown)
	require.NoError(t, err)
	assert.Equal(t, unknown, got)

	for _, v := range []any{"text", float64(3), true, nil, []any{"a"}} {
		got, err := c.Decode(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	c := newCodec()

	enc, err := c.Encode(blue)
	require.NoError(t, err)
	m := enc.(map[string]any)
	assert.Equal(t, "blue", m["name"])
	assert.Equal(t, 2, m["value"])
	assert.Equal(t, "github.com/suparena/wpstore/codec_test.color", m[codec.TagKey])

	dec, err := c.Decode(m)
	require.NoError(t, err)
	assert.Equal(t, blue, dec)
}

func TestRecordRoundTrip(t *testing.T) {
	c := newCodec()
	a := &swatch{Name: "a", Color: red, Made: march1}
	b := &swatch{Name: "b", Color: blue, Made: march1.Add(time.Hour)}

	tests := []struct {
		name string
		in   *palette
	}{
		{
			name: "populated",
			in: &palette{
				Slug:     "warm",
				Swatches: []*swatch{a, b},
				ByName:   map[string]*swatch{"a": a, "b": b},
				Extra:    map[string]any{"note": "kept", "nested": map[string]any{"n": float64(1)}},
			},
		},
		{
			name: "empty collections",
			in: &palette{
				Slug:     "empty",
				Swatches: []*swatch{},
				ByName:   map[string]*swatch{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.ToJSON(tt.in)
			require.NoError(t, err)

			out, err := c.FromJSON(data)
			require.NoError(t, err)
			assert.Equal(t, tt.in, out)
		})
	}
}

func TestDecodeIndependentOfFieldOrder(t *testing.T) {
	c := newCodec()
	doc := `{
		"made": {"value": "2024-03-01T12:00:00Z", "type-tag": "datetime"},
		"name": "a",
		"color": {"value": 1, "name": "red", "type-tag": "github.com/suparena/wpstore/codec_test.color"},
		"type-tag": "github.com/suparena/wpstore/codec_test.swatch"
	}`

	out, err := c.FromJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, &swatch{Name: "a", Color: red, Made: march1}, out)
}

func TestEncodeUnregisteredRecord(t *testing.T) {
	_, err := newCodec().Encode(unregistered{})
	require.Error(t, err)
	assert.True(t, errors.IsIntegrity(err))
}

func TestMarshalKeepsNilCollections(t *testing.T) {
	out, err := newCodec().Marshal(&palette{Slug: "nil"})
	require.NoError(t, err)
	m := out.(map[string]any)
	assert.Nil(t, m["swatches"])
	assert.Nil(t, m["by_name"])
	assert.Nil(t, m["extra"])
}

func TestMarshalIntKeys(t *testing.T) {
	out, err := newCodec().Marshal(map[int]string{1: "a", 20: "b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "a", "20": "b"}, out)
}

func TestSaveAndLoadFile(t *testing.T) {
	c := newCodec()
	path := filepath.Join(t.TempDir(), "palette.json")
	in := &palette{Slug: "warm", Swatches: []*swatch{{Name: "a", Color: red, Made: march1}}}

	require.NoError(t, c.SaveFile(path, in))

	got, err := codec.LoadFileAs[*palette](c, path)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = codec.LoadFileAs[*swatch](c, path)
	assert.True(t, errors.IsIntegrity(err))

	_, err = c.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
