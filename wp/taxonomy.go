/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"github.com/suparena/wpstore/container"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// Taxonomy describes a grouping of terms, e.g. "category" or "post_tag".
type Taxonomy struct {
	HasLinks

	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Slug          string   `json:"slug"`
	Types         []string `json:"types"`
	Hierarchical  bool     `json:"hierarchical"`
	RestBase      string   `json:"rest_base"`
	RestNamespace string   `json:"rest_namespace"`
}

func NewTaxonomy(data map[string]any) (*Taxonomy, error) {
	t := &Taxonomy{}
	if err := record.FromRaw(data, t); err != nil {
		return nil, err
	}
	t.setDefaults()
	return t, nil
}

func taxonomyFromTagged(data map[string]any, _ registry.Decoder) (*Taxonomy, error) {
	t := &Taxonomy{}
	if err := record.FromTagged(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Taxonomy) GetSlug() string { return t.Slug }

func (t *Taxonomy) ToRaw() map[string]any {
	out := map[string]any{
		"name":           t.Name,
		"description":    t.Description,
		"slug":           t.Slug,
		"types":          t.Types,
		"hierarchical":   t.Hierarchical,
		"rest_base":      t.RestBase,
		"rest_namespace": t.RestNamespace,
	}
	t.rawInto(out)
	return out
}

// ItemsURL is the collection URL of the taxonomy's terms.
func (t *Taxonomy) ItemsURL() (string, bool) {
	return t.Href("wp:items")
}

// Taxonomies maps taxonomy slugs to taxonomies.
type Taxonomies struct {
	container.Dict[string, *Taxonomy]
}

var taxonomiesOptions = container.Options[string, *Taxonomy]{
	New:   NewTaxonomy,
	KeyOf: func(t *Taxonomy) string { return t.Slug },
}

func NewTaxonomies() *Taxonomies {
	return &Taxonomies{Dict: container.NewDict(taxonomiesOptions)}
}

// CreateTaxonomies builds the dict from the values of the taxonomies endpoint.
func CreateTaxonomies(rows []any) (*Taxonomies, error) {
	return create(NewTaxonomies(), rows)
}

func taxonomiesFromTagged(data map[string]any, dec registry.Decoder) (*Taxonomies, error) {
	return rebuild(NewTaxonomies(), data, dec)
}

// PostTaxonomyRel links a post to one term of a taxonomy.
type PostTaxonomyRel struct {
	Taxonomy string `json:"taxonomy"`
	TermID   int    `json:"term_id"`
	TermSlug string `json:"term_slug"`
}

func postTaxonomyRelFromTagged(data map[string]any, _ registry.Decoder) (*PostTaxonomyRel, error) {
	r := &PostTaxonomyRel{}
	if err := record.FromTagged(data, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostTaxonomyRel) ToRaw() map[string]any {
	return map[string]any{
		"taxonomy":  r.Taxonomy,
		"term_id":   r.TermID,
		"term_slug": r.TermSlug,
	}
}
