/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/wp"
)

func TestValidateKey(t *testing.T) {
	for _, key := range []string{"posts", "posts-2024", "media_page_1"} {
		assert.NoError(t, datastore.ValidateKey(key), key)
	}
	for _, key := range []string{"", "a/b", `a\b`, "SNAPSHOT#x", ".", "..", ".hidden"} {
		assert.True(t, errors.IsValidationError(datastore.ValidateKey(key)), key)
	}
}

func TestEncodeDecode(t *testing.T) {
	authors, err := wp.CreateAuthors([]any{
		map[string]any{"id": 3, "name": "Ada", "slug": "ada"},
		map[string]any{"id": 4, "name": "Grace", "slug": "grace"},
	})
	require.NoError(t, err)

	item, err := datastore.Encode(codec.Default, "authors", authors)
	require.NoError(t, err)
	assert.Equal(t, "authors", item.Key)
	assert.Equal(t, "github.com/suparena/wpstore/wp.Authors", item.EntityType)
	assert.Contains(t, item.Body, `"type-tag"`)
	assert.False(t, item.SavedAt.IsZero())

	v, err := datastore.Decode(codec.Default, item)
	require.NoError(t, err)
	back, ok := v.(*wp.Authors)
	require.True(t, ok, "decoded %T", v)
	assert.Equal(t, []int{3, 4}, back.Keys())

	info := item.Info()
	assert.Equal(t, item.EntityType, info.EntityType)
}

func TestEncodeRejectsUnregistered(t *testing.T) {
	_, err := datastore.Encode(codec.Default, "x", map[string]any{"a": 1})
	assert.True(t, errors.IsValidationError(err))
}

func TestDecodeEntityTypeMismatch(t *testing.T) {
	authors, err := wp.CreateAuthors(nil)
	require.NoError(t, err)
	item, err := datastore.Encode(codec.Default, "authors", authors)
	require.NoError(t, err)

	item.EntityType = "github.com/suparena/wpstore/wp.PostList"
	_, err = datastore.Decode(codec.Default, item)
	assert.True(t, errors.IsIntegrity(err))
}
