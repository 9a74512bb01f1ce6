/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"github.com/suparena/wpstore/container"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// WpItem is a taxonomy term such as a category or tag.
type WpItem struct {
	HasLinks

	ID            int            `json:"id"`
	Count         int            `json:"count"`
	Description   string         `json:"description"`
	Link          string         `json:"link"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Taxonomy      string         `json:"taxonomy"`
	Parent        int            `json:"parent"`
	Meta          any            `json:"meta"`
	Acf           any            `json:"acf"`
	YoastHead     string         `json:"yoast_head"`
	YoastHeadJSON map[string]any `json:"yoast_head_json"`
}

// NewWpItem builds a term from an API object.
func NewWpItem(data map[string]any) (*WpItem, error) {
	item := &WpItem{}
	if err := record.FromRaw(data, item); err != nil {
		return nil, err
	}
	item.setDefaults()
	return item, nil
}

func wpItemFromTagged(data map[string]any, _ registry.Decoder) (*WpItem, error) {
	item := &WpItem{}
	if err := record.FromTagged(data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (w *WpItem) GetSlug() string { return w.Slug }

func (w *WpItem) ToRaw() map[string]any {
	out := map[string]any{
		"id":              w.ID,
		"count":           w.Count,
		"description":     w.Description,
		"link":            w.Link,
		"name":            w.Name,
		"slug":            w.Slug,
		"taxonomy":        w.Taxonomy,
		"parent":          w.Parent,
		"meta":            w.Meta,
		"acf":             w.Acf,
		"yoast_head":      w.YoastHead,
		"yoast_head_json": w.YoastHeadJSON,
	}
	w.rawInto(out)
	return out
}

// WpItems lists the terms of one taxonomy in API order, keyed by term id.
type WpItems struct {
	container.List[int, *WpItem]
}

var wpItemsOptions = container.Options[int, *WpItem]{
	New:   NewWpItem,
	KeyOf: func(w *WpItem) int { return w.ID },
}

func NewWpItems() *WpItems {
	return &WpItems{List: container.NewList(wpItemsOptions)}
}

// CreateWpItems builds the list from the first page of terms.
func CreateWpItems(rows []any) (*WpItems, error) {
	return create(NewWpItems(), rows)
}

func wpItemsFromTagged(data map[string]any, dec registry.Decoder) (*WpItems, error) {
	return rebuild(NewWpItems(), data, dec)
}
