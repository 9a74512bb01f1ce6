/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/suparena/wpstore/errors"
)

// DefaultPerPage matches the API's own default.
const DefaultPerPage = 10

// PageOptions controls a paginated listing.
type PageOptions struct {
	PerPage int
	// OrderBy names the sort field; a leading "-" sorts descending and a
	// leading "+" or no prefix sorts ascending.
	OrderBy string
	// Params are extra query parameters sent with every page.
	Params url.Values
}

// Page is one page of a listing.
type Page struct {
	Number     int
	TotalPages int
	Total      int
	Items      []any
}

func (o PageOptions) query() url.Values {
	q := url.Values{}
	for k, vs := range o.Params {
		q[k] = append([]string(nil), vs...)
	}
	perPage := o.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	q.Set("per_page", strconv.Itoa(perPage))

	if o.OrderBy != "" {
		field, order := o.OrderBy, "asc"
		switch {
		case strings.HasPrefix(field, "-"):
			field, order = strings.TrimLeft(field, "-"), "desc"
		case strings.HasPrefix(field, "+"):
			field = strings.TrimLeft(field, "+")
		}
		q.Set("order", order)
		q.Set("orderby", field)
	}
	return q
}

// GetPaginated fetches the listing at path page by page and passes each page
// to fn before requesting the next. It stops after the last page reported by
// X-WP-TotalPages, or at the first error from the API or from fn.
func (c *Client) GetPaginated(ctx context.Context, path string, opts PageOptions, fn func(Page) error) error {
	q := opts.query()
	for page := 1; ; page++ {
		q.Set("page", strconv.Itoa(page))
		resp, err := c.Get(ctx, path, q)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}

		var items []any
		if err := json.Unmarshal(resp.Body, &items); err != nil {
			return errors.NewValidationError("body", fmt.Sprintf("page %d of %s is not a JSON array: %v", page, path, err))
		}

		hasMore := page < resp.TotalPages
		c.logger.Info("fetched page", "path", path, "page", page, "has_more", hasMore, "total", resp.Total, "total_pages", resp.TotalPages)

		if err := fn(Page{Number: page, TotalPages: resp.TotalPages, Total: resp.Total, Items: items}); err != nil {
			return err
		}
		if !hasMore {
			return nil
		}
	}
}
