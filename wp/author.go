/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"github.com/suparena/wpstore/container"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// Author is a public user profile.
type Author struct {
	HasLinks

	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Slug        string `json:"slug"`
	Acf         any    `json:"acf"`
}

func NewAuthor(data map[string]any) (*Author, error) {
	a := &Author{}
	if err := record.FromRaw(data, a); err != nil {
		return nil, err
	}
	a.setDefaults()
	return a, nil
}

func authorFromTagged(data map[string]any, _ registry.Decoder) (*Author, error) {
	a := &Author{}
	if err := record.FromTagged(data, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Author) GetSlug() string { return a.Slug }

func (a *Author) ToRaw() map[string]any {
	out := map[string]any{
		"id":          a.ID,
		"name":        a.Name,
		"url":         a.URL,
		"description": a.Description,
		"link":        a.Link,
		"slug":        a.Slug,
		"acf":         a.Acf,
	}
	a.rawInto(out)
	return out
}

// Authors maps user ids to authors.
type Authors struct {
	container.Dict[int, *Author]
}

var authorsOptions = container.Options[int, *Author]{
	New:   NewAuthor,
	KeyOf: func(a *Author) int { return a.ID },
}

func NewAuthors() *Authors {
	return &Authors{Dict: container.NewDict(authorsOptions)}
}

func CreateAuthors(rows []any) (*Authors, error) {
	return create(NewAuthors(), rows)
}

func authorsFromTagged(data map[string]any, dec registry.Decoder) (*Authors, error) {
	return rebuild(NewAuthors(), data, dec)
}
