/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"time"

	wperrors "github.com/suparena/wpstore/errors"
	"gopkg.in/yaml.v3"
)

// Options tunes the HTTP client and the snapshot stores.
type Options struct {
	PerPage      int           `yaml:"per_page"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
	UserAgent    string        `yaml:"user_agent"`
	UseCache     bool          `yaml:"use_cache"`
	CacheFile    string        `yaml:"cache_file"`
	SnapshotDir  string        `yaml:"snapshot_dir"`
	DynamoDB     DynamoDB      `yaml:"dynamodb"`
}

// DynamoDB selects the table used by the ddb snapshot store.
type DynamoDB struct {
	Table  string `yaml:"table"`
	Region string `yaml:"region"`
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() Options {
	return Options{
		PerPage:      10,
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryBackoff: 500 * time.Millisecond,
		UserAgent:    "wpstore",
		CacheFile:    "request_cache.json",
		SnapshotDir:  ".",
	}
}

// LoadOptions reads a YAML file over DefaultOptions. Durations use Go syntax
// such as "30s".
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	switch {
	case o.PerPage < 1 || o.PerPage > 100:
		return wperrors.NewValidationError("per_page", "must be between 1 and 100")
	case o.MaxRetries < 0:
		return wperrors.NewValidationError("max_retries", "must not be negative")
	case o.Timeout < 0:
		return wperrors.NewValidationError("timeout", "must not be negative")
	}
	return nil
}
