/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/wpstore/datastore/file"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/storagemodels"
	"github.com/suparena/wpstore/wp"
)

func authors(t *testing.T, slugs ...string) *wp.Authors {
	t.Helper()
	rows := make([]any, 0, len(slugs))
	for i, slug := range slugs {
		rows = append(rows, map[string]any{"id": i + 1, "name": slug, "slug": slug})
	}
	a, err := wp.CreateAuthors(rows)
	require.NoError(t, err)
	return a
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "authors", authors(t, "ada", "grace")))
	assert.FileExists(t, filepath.Join(dir, "authors.json"))

	v, err := store.Load(ctx, "authors")
	require.NoError(t, err)
	back, ok := v.(*wp.Authors)
	require.True(t, ok, "decoded %T", v)
	assert.Equal(t, []string{"ada", "grace"}, back.Slugs())
}

func TestSaveCreateOnly(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "authors", authors(t, "ada"), storagemodels.WithCreateOnly()))
	err = store.Save(ctx, "authors", authors(t, "grace"), storagemodels.WithCreateOnly())
	assert.True(t, errors.IsConditionFailed(err))

	v, err := store.Load(ctx, "authors")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada"}, v.(*wp.Authors).Slugs())

	// plain saves overwrite
	require.NoError(t, store.Save(ctx, "authors", authors(t, "grace")))
	v, err = store.Load(ctx, "authors")
	require.NoError(t, err)
	assert.Equal(t, []string{"grace"}, v.(*wp.Authors).Slugs())
}

func TestMissingSnapshot(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(ctx, "nope")
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(store.Delete(ctx, "nope")))
}

func TestInvalidInput(t *testing.T) {
	ctx := context.Background()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	assert.True(t, errors.IsValidationError(store.Save(ctx, "../escape", authors(t, "ada"))))
	assert.True(t, errors.IsValidationError(store.Save(ctx, "plain", map[string]any{"a": 1})))
	_, err = store.Load(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "authors-b", authors(t, "grace")))
	require.NoError(t, store.Save(ctx, "authors-a", authors(t, "ada")))
	posts := wp.NewPostList()
	require.NoError(t, store.Save(ctx, "posts", posts))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "authors-a", infos[0].Key)
	assert.Equal(t, "github.com/suparena/wpstore/wp.Authors", infos[0].EntityType)
	assert.Equal(t, "github.com/suparena/wpstore/wp.PostList", infos[2].EntityType)
	assert.False(t, infos[0].SavedAt.IsZero())

	infos, err = store.List(ctx, storagemodels.WithPrefix("authors-"))
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	require.NoError(t, store.Delete(ctx, "authors-a"))
	infos, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, store.Save(ctx, "authors", authors(t, "ada")), context.Canceled)
}
