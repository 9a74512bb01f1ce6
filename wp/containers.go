/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"github.com/suparena/wpstore/registry"
)

type growable interface {
	Extend(rows []any) error
	DecodeTagged(data map[string]any, dec registry.Decoder, self any) error
}

func create[C growable](c C, rows []any) (C, error) {
	if err := c.Extend(rows); err != nil {
		var zero C
		return zero, err
	}
	return c, nil
}

func rebuild[C growable](c C, data map[string]any, dec registry.Decoder) (C, error) {
	if err := c.DecodeTagged(data, dec, c); err != nil {
		var zero C
		return zero, err
	}
	return c, nil
}
