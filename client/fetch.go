/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cast"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/wp"
)

type extender interface {
	Extend(rows []any) error
}

// collect appends every page of a listing to into. When a page fails, the
// pages appended before it stay in into and both are returned.
func collect[C extender](ctx context.Context, c *Client, path string, opts PageOptions, into C) (C, error) {
	err := c.GetPaginated(ctx, path, opts, func(p Page) error {
		return into.Extend(p.Items)
	})
	return into, err
}

// GetTaxonomies fetches every taxonomy, in the order the API lists them.
func (c *Client) GetTaxonomies(ctx context.Context) (*wp.Taxonomies, error) {
	resp, err := c.Get(ctx, "taxonomies", nil)
	if err != nil {
		return nil, err
	}
	rows, err := objectValues(resp.Body)
	if err != nil {
		return nil, err
	}
	return wp.CreateTaxonomies(rows)
}

// GetTaxonomy fetches one taxonomy by slug.
func (c *Client) GetTaxonomy(ctx context.Context, slug string) (*wp.Taxonomy, error) {
	resp, err := c.Get(ctx, "taxonomies/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, errors.NewValidationError("body", err.Error())
	}
	return wp.NewTaxonomy(data)
}

// GetTaxonomyItems fetches the terms of a taxonomy through its wp:items link.
func (c *Client) GetTaxonomyItems(ctx context.Context, tax *wp.Taxonomy, opts PageOptions) (*wp.WpItems, error) {
	href, ok := tax.ItemsURL()
	if !ok {
		return nil, errors.NewNotFoundError("wp:items link", tax.Slug)
	}
	return collect(ctx, c, href, opts, wp.NewWpItems())
}

// GetPosts fetches a post type collection, "posts" when postType is empty.
func (c *Client) GetPosts(ctx context.Context, postType string, opts PageOptions) (*wp.PostList, error) {
	if postType == "" {
		postType = "posts"
	}
	return collect(ctx, c, postType, opts, wp.NewPostList())
}

func (c *Client) GetMedia(ctx context.Context, opts PageOptions) (*wp.MediaList, error) {
	return collect(ctx, c, "media", opts, wp.NewMediaList())
}

func (c *Client) GetAuthors(ctx context.Context, opts PageOptions) (*wp.Authors, error) {
	return collect(ctx, c, "users", opts, wp.NewAuthors())
}

// CheckTaxonomyRels fetches the terms attached to each post, one request per
// post and taxonomy, and records them on the post.
func (c *Client) CheckTaxonomyRels(ctx context.Context, posts *wp.PostList) error {
	for post := range posts.All() {
		if err := c.checkPostRels(ctx, post); err != nil {
			return fmt.Errorf("post %d: %w", post.ID, err)
		}
	}
	return nil
}

func (c *Client) checkPostRels(ctx context.Context, post *wp.Post) error {
	for _, taxonomy := range post.TaxonomyNames {
		path, params := termsPath(post, taxonomy)
		params.Set("_fields", "id,slug")

		resp, err := c.Get(ctx, path, params)
		if err != nil {
			return err
		}
		var terms []map[string]any
		if err := json.Unmarshal(resp.Body, &terms); err != nil {
			return errors.NewValidationError("body", err.Error())
		}

		rels := make([]*wp.PostTaxonomyRel, 0, len(terms))
		for _, term := range terms {
			rels = append(rels, &wp.PostTaxonomyRel{
				Taxonomy: taxonomy,
				TermID:   cast.ToInt(term["id"]),
				TermSlug: cast.ToString(term["slug"]),
			})
		}
		post.SetTaxonomyRels(taxonomy, rels)
	}
	return nil
}

// termsPath prefers the post's own wp:term link, which names the taxonomy's
// REST route, and falls back to <taxonomy>?post=<id>.
func termsPath(post *wp.Post, taxonomy string) (string, url.Values) {
	for _, link := range post.Links["wp:term"] {
		if cast.ToString(link["taxonomy"]) != taxonomy {
			continue
		}
		if href := cast.ToString(link["href"]); href != "" {
			return href, url.Values{}
		}
	}
	return taxonomy, url.Values{"post": {strconv.Itoa(post.ID)}}
}

// objectValues returns the values of a JSON object in document order.
func objectValues(body []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.NewValidationError("body", err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.NewValidationError("body", "expected a JSON object")
	}

	var values []any
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, errors.NewValidationError("body", err.Error())
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, errors.NewValidationError("body", err.Error())
		}
		values = append(values, v)
	}
	return values, nil
}
