/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "time"

// SaveOptions configures a single Save.
type SaveOptions struct {
	// CreateOnly fails the save when the key already holds a snapshot.
	CreateOnly bool
}

// SaveOption is a functional option for Save
type SaveOption func(*SaveOptions)

// WithCreateOnly refuses to overwrite an existing snapshot
func WithCreateOnly() SaveOption {
	return func(opts *SaveOptions) {
		opts.CreateOnly = true
	}
}

// ApplySaveOptions folds opts over the defaults.
func ApplySaveOptions(opts ...SaveOption) SaveOptions {
	var o SaveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ListOptions configures how snapshots are listed
type ListOptions struct {
	Prefix       string        // Only keys starting with Prefix
	PageSize     int32         // Items per backend page (default: 100)
	MaxRetries   int           // Retry attempts for throttled pages (default: 3)
	RetryBackoff time.Duration // Backoff between retries (default: 1s)
}

// ListOption is a functional option for List
type ListOption func(*ListOptions)

// DefaultListOptions returns default listing options
func DefaultListOptions() ListOptions {
	return ListOptions{
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

// WithPrefix restricts the listing to keys with the prefix
func WithPrefix(prefix string) ListOption {
	return func(opts *ListOptions) {
		opts.Prefix = prefix
	}
}

// WithPageSize sets the number of items per backend page
func WithPageSize(size int32) ListOption {
	return func(opts *ListOptions) {
		opts.PageSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) ListOption {
	return func(opts *ListOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the base backoff between retries
func WithRetryBackoff(backoff time.Duration) ListOption {
	return func(opts *ListOptions) {
		opts.RetryBackoff = backoff
	}
}

// ApplyListOptions folds opts over DefaultListOptions.
func ApplyListOptions(opts ...ListOption) ListOptions {
	o := DefaultListOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
