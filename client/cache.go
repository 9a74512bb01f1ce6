/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/patrickmn/go-cache"
)

// loadCache seeds the response cache from cacheFile. A missing file is an
// empty cache.
func (c *Client) loadCache() error {
	data, err := os.ReadFile(c.cacheFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read request cache: %w", err)
	}

	var entries map[string]*Response
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse request cache %s: %w", c.cacheFile, err)
	}
	for url, resp := range entries {
		c.cache.Set(url, resp, cache.NoExpiration)
	}
	c.logger.Debug("loaded request cache", "file", c.cacheFile, "entries", len(entries))
	return nil
}

func (c *Client) saveCache() error {
	if c.cacheFile == "" {
		return nil
	}
	items := c.cache.Items()
	entries := make(map[string]*Response, len(items))
	for url, item := range items {
		if resp, ok := item.Object.(*Response); ok {
			entries[url] = resp
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.cacheFile, data, 0o644)
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.Flush()
	}
}
