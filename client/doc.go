/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package client reads the WordPress REST API and builds wp collections from
// its paginated listings.
//
// Requests are sequential. Each page is appended to the collection before
// the next one is requested, so a failing page leaves the earlier pages in
// place and the fetchers return them together with the error.
//
// Basic credentials and the user agent are only sent to the configured site.
// Transient failures (429, 5xx and transport errors) are retried with a
// linear backoff. Responses may be cached in memory and persisted to a JSON
// file between runs.
package client
