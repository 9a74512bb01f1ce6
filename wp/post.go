/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/container"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// PublishItemBase holds the fields shared by posts and attachments.
type PublishItemBase struct {
	HasLinks
	HasDates

	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Status   Status `json:"status"`
	Type     string `json:"type"`
	Link     string `json:"link"`
	Title    string `json:"title"`
	AuthorID int    `json:"author_id"`
	Acf      any    `json:"acf"`
}

// typed fields the generic decoder must not touch
var publishSkip = append([]string{"status"}, dateFields...)

// normalizePublishRaw copies an API object and applies the renames shared by
// every published item: the rendered title is flattened and author becomes
// author_id.
func normalizePublishRaw(data map[string]any) map[string]any {
	d := record.Clone(data)
	if title, ok := d["title"].(map[string]any); ok {
		d["title"] = title["rendered"]
	}
	if author, ok := d["author"]; ok {
		d["author_id"] = author
		delete(d, "author")
	}
	return d
}

func (p *PublishItemBase) fromRaw(data map[string]any) error {
	status, err := cast.ToStringE(data["status"])
	if err != nil || status == "" {
		return errors.NewValidationError("status", "missing status")
	}
	if p.Status, err = ParseStatus(status); err != nil {
		return err
	}
	if err := p.HasDates.fromRaw(data); err != nil {
		return err
	}
	p.setDefaults()
	return nil
}

func (p *PublishItemBase) fromTagged(data map[string]any, dec registry.Decoder) error {
	var err error
	if p.Status, err = codec.DecodeAs[Status](dec, data["status"]); err != nil {
		return err
	}
	return p.HasDates.fromTagged(data, dec)
}

func (p *PublishItemBase) rawInto(out map[string]any) {
	out["id"] = p.ID
	out["slug"] = p.Slug
	out["status"] = p.Status
	out["type"] = p.Type
	out["link"] = p.Link
	out["title"] = p.Title
	out["author_id"] = p.AuthorID
	out["acf"] = p.Acf
	p.HasLinks.rawInto(out)
	p.HasDates.rawInto(out)
}

func (p *PublishItemBase) GetSlug() string { return p.Slug }

// EmbeddedAuthor builds the author from _embedded.author, which is present
// when the item was fetched with _embed.
func (p *PublishItemBase) EmbeddedAuthor() (*Author, error) {
	authors, _ := p.Embedded["author"].([]any)
	if len(authors) == 0 {
		return nil, errors.NewNotFoundError("Author", fmt.Sprint(p.AuthorID))
	}
	data, ok := authors[0].(map[string]any)
	if !ok {
		return nil, errors.NewValidationError("_embedded", fmt.Sprintf("author is %T", authors[0]))
	}
	return NewAuthor(data)
}

// Post is a published post of any post type.
type Post struct {
	PublishItemBase

	TaxonomyNames []string                       `json:"taxonomy_names"`
	TaxonomyRels  map[string][]*PostTaxonomyRel `json:"taxonomy_rels"`
}

var postSkip = append([]string{"taxonomy_rels"}, publishSkip...)

// NewPost builds a post from an API object. Taxonomy names come from the
// embeddable wp:term links; their relations start empty.
func NewPost(data map[string]any) (*Post, error) {
	d := normalizePublishRaw(data)
	p := &Post{}
	if err := record.FromRaw(d, p, postSkip...); err != nil {
		return nil, err
	}
	if err := p.fromRaw(d); err != nil {
		return nil, fmt.Errorf("post %d: %w", p.ID, err)
	}
	p.TaxonomyNames = termTaxonomies(p.Links)
	p.TaxonomyRels = make(map[string][]*PostTaxonomyRel, len(p.TaxonomyNames))
	for _, name := range p.TaxonomyNames {
		p.TaxonomyRels[name] = []*PostTaxonomyRel{}
	}
	return p, nil
}

func termTaxonomies(links HrefMap) []string {
	names := []string{}
	for _, term := range links["wp:term"] {
		if !cast.ToBool(term["embeddable"]) {
			continue
		}
		names = append(names, cast.ToString(term["taxonomy"]))
	}
	return names
}

func postFromTagged(data map[string]any, dec registry.Decoder) (*Post, error) {
	p := &Post{}
	if err := record.FromTagged(data, p, postSkip...); err != nil {
		return nil, err
	}
	if err := p.fromTagged(data, dec); err != nil {
		return nil, err
	}
	rels, err := codec.DecodeMapAs[any](dec, data["taxonomy_rels"])
	if err != nil {
		return nil, err
	}
	if rels != nil {
		p.TaxonomyRels = make(map[string][]*PostTaxonomyRel, len(rels))
		for name, v := range rels {
			if p.TaxonomyRels[name], err = codec.DecodeSliceAs[*PostTaxonomyRel](dec, v); err != nil {
				return nil, fmt.Errorf("taxonomy_rels.%s: %w", name, err)
			}
		}
	}
	return p, nil
}

func (p *Post) ToRaw() map[string]any {
	out := map[string]any{
		"taxonomy_names": p.TaxonomyNames,
		"taxonomy_rels":  p.TaxonomyRels,
	}
	p.rawInto(out)
	return out
}

// SetTaxonomyRels replaces the post's relations for one taxonomy. It is the
// only mutation a post accepts after construction.
func (p *Post) SetTaxonomyRels(taxonomy string, rels []*PostTaxonomyRel) {
	if p.TaxonomyRels == nil {
		p.TaxonomyRels = make(map[string][]*PostTaxonomyRel)
	}
	if rels == nil {
		rels = []*PostTaxonomyRel{}
	}
	p.TaxonomyRels[taxonomy] = rels
}

// PostList holds posts in API order, keyed by post id.
type PostList struct {
	container.List[int, *Post]
}

var postListOptions = container.Options[int, *Post]{
	New:   NewPost,
	KeyOf: func(p *Post) int { return p.ID },
}

func NewPostList() *PostList {
	return &PostList{List: container.NewList(postListOptions)}
}

// CreatePostList builds the list from the first page of posts.
func CreatePostList(rows []any) (*PostList, error) {
	return create(NewPostList(), rows)
}

func postListFromTagged(data map[string]any, dec registry.Decoder) (*PostList, error) {
	return rebuild(NewPostList(), data, dec)
}
