/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	var v any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func loadRows(t *testing.T, name string) []any {
	t.Helper()
	rows, ok := loadFixture(t, name).([]any)
	require.True(t, ok, "%s is not an array", name)
	return rows
}

func loadRow(t *testing.T, name string, i int) map[string]any {
	t.Helper()
	row, ok := loadRows(t, name)[i].(map[string]any)
	require.True(t, ok)
	return row
}
