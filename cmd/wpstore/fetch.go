/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/wpstore/client"
	"github.com/suparena/wpstore/storagemodels"
)

var (
	flagPostType   string
	flagOrderBy    string
	flagPerPage    int
	flagRels       bool
	flagCreateOnly bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <kind> <key>",
	Short: "Fetch a collection and save it as a snapshot",
	Long: `Fetch downloads every page of a collection and saves it under key.

Kinds:
  taxonomies       all taxonomies, keyed by slug
  terms <taxonomy> the terms of one taxonomy
  posts            posts, or another post type with --post-type
  media            media items
  authors          users

Example:
  wpstore fetch posts posts-latest --order-by -date --rels
  wpstore fetch terms category categories
  wpstore --store ddb fetch authors authors`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagPostType, "post-type", "", "REST base of the post type (default: posts)")
	fetchCmd.Flags().StringVar(&flagOrderBy, "order-by", "", "sort field, prefix with - for descending")
	fetchCmd.Flags().IntVar(&flagPerPage, "per-page", 0, "items per page (default: from options)")
	fetchCmd.Flags().BoolVar(&flagRels, "rels", false, "also fetch the taxonomy terms of each post")
	fetchCmd.Flags().BoolVar(&flagCreateOnly, "create-only", false, "fail if the key already holds a snapshot")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, key := args[0], args[len(args)-1]
	if kind == "terms" && len(args) != 3 {
		return fmt.Errorf("terms needs a taxonomy: fetch terms <taxonomy> <key>")
	}
	if kind != "terms" && len(args) != 2 {
		return fmt.Errorf("fetch %s takes exactly one key", kind)
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	perPage := flagPerPage
	if perPage == 0 {
		perPage = options.PerPage
	}
	pages := client.PageOptions{PerPage: perPage, OrderBy: flagOrderBy}

	v, err := fetchKind(ctx, c, kind, args, pages)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", kind, err)
	}

	var saveOpts []storagemodels.SaveOption
	if flagCreateOnly {
		saveOpts = append(saveOpts, storagemodels.WithCreateOnly())
	}
	if err := store.Save(ctx, key, v, saveOpts...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	logger.Info("saved snapshot", "key", key, "kind", kind, "items", sizeOf(v))
	return nil
}

func fetchKind(ctx context.Context, c *client.Client, kind string, args []string, pages client.PageOptions) (any, error) {
	switch kind {
	case "taxonomies":
		return c.GetTaxonomies(ctx)
	case "terms":
		tax, err := c.GetTaxonomy(ctx, args[1])
		if err != nil {
			return nil, err
		}
		return c.GetTaxonomyItems(ctx, tax, pages)
	case "posts":
		posts, err := c.GetPosts(ctx, flagPostType, pages)
		if err != nil {
			return nil, err
		}
		if flagRels {
			if err := c.CheckTaxonomyRels(ctx, posts); err != nil {
				return nil, err
			}
		}
		return posts, nil
	case "media":
		return c.GetMedia(ctx, pages)
	case "authors":
		return c.GetAuthors(ctx, pages)
	default:
		return nil, fmt.Errorf("unknown kind %q (valid: taxonomies, terms, posts, media, authors)", kind)
	}
}

// sizeOf reports the item count of a container, or 1 for a single record.
func sizeOf(v any) int {
	if c, ok := v.(interface{ Len() int }); ok {
		return c.Len()
	}
	return 1
}
