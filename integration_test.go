//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wpstore_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/suparena/wpstore"
	"github.com/suparena/wpstore/client"
	"github.com/suparena/wpstore/config"
	"github.com/suparena/wpstore/datastore/ddb"
	"github.com/suparena/wpstore/datastore/file"
	"github.com/suparena/wpstore/wp"
)

// setupClient talks to the site named in ~/.wpstore.env or the environment.
func setupClient(t *testing.T) *client.Client {
	cfg, err := config.Load(config.DefaultEnvFile())
	if err != nil {
		t.Skipf("no site configured: %v", err)
	}
	opts := config.DefaultOptions()
	opts.PerPage = 5
	c, err := client.NewFromOptions(cfg, opts, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func setupStorage(t *testing.T) wpstore.Storage {
	sm := wpstore.NewStorageManager()
	local, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	if err := sm.RegisterDataStore("file", local); err != nil {
		t.Fatal(err)
	}

	if table := os.Getenv("DDB_TEST_TABLE_NAME"); table != "" {
		ctx := context.Background()
		dc, err := ddb.NewDynamoDBClient(ctx, os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"), os.Getenv("AWS_REGION"))
		if err != nil {
			t.Fatalf("ddb client: %v", err)
		}
		if err := sm.RegisterDataStore("ddb", ddb.New(dc, table)); err != nil {
			t.Fatal(err)
		}
	}
	return sm
}

func TestIntegrationPostsSnapshot(t *testing.T) {
	c := setupClient(t)
	sm := setupStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	posts, err := c.GetPosts(ctx, "", client.PageOptions{PerPage: 5, OrderBy: "-date"})
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if err := c.CheckTaxonomyRels(ctx, posts); err != nil {
		t.Fatalf("CheckTaxonomyRels: %v", err)
	}

	key := "integration-posts-" + time.Now().UTC().Format("20060102150405")
	for _, name := range sm.ListDataStores() {
		t.Run(name, func(t *testing.T) {
			store, err := wpstore.GetTypedStore[*wp.PostList](sm, name)
			if err != nil {
				t.Fatal(err)
			}
			if err := store.Save(ctx, key, posts); err != nil {
				t.Fatalf("Save: %v", err)
			}
			defer store.Delete(ctx, key)

			loaded, err := store.Load(ctx, key)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.Len() != posts.Len() {
				t.Fatalf("loaded %d posts, saved %d", loaded.Len(), posts.Len())
			}
			for i, slug := range posts.Slugs() {
				if loaded.Slugs()[i] != slug {
					t.Fatalf("slug %d: %q != %q", i, loaded.Slugs()[i], slug)
				}
			}
		})
	}
}

func TestIntegrationTaxonomies(t *testing.T) {
	c := setupClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	taxonomies, err := c.GetTaxonomies(ctx)
	if err != nil {
		t.Fatalf("GetTaxonomies: %v", err)
	}
	category, err := taxonomies.Get("category")
	if err != nil {
		t.Skipf("site has no category taxonomy: %v", err)
	}
	items, err := c.GetTaxonomyItems(ctx, category, client.PageOptions{PerPage: 5})
	if err != nil {
		t.Fatalf("GetTaxonomyItems: %v", err)
	}
	if err := items.Validate(); err != nil {
		t.Fatalf("inconsistent terms: %v", err)
	}
}
