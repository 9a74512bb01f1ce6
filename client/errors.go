/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	wperrors "github.com/suparena/wpstore/errors"
)

// HTTPError is returned for a response outside the 2xx range.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Is maps 404 onto the not found sentinel.
func (e *HTTPError) Is(target error) bool {
	return target == wperrors.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Temporary reports whether the request may succeed when repeated.
func (e *HTTPError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return "failed to perform request: " + e.err.Error() }

func (e *transportError) Unwrap() error { return e.err }

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}
	var tErr *transportError
	return errors.As(err, &tErr)
}

// IsHTTPStatus reports whether err carries the given response status.
func IsHTTPStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}
