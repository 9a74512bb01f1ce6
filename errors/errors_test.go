/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Post", "123")

	// Test error message
	expected := `Post with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("Taxonomy", "category")

	// Test error message
	expected := `Taxonomy with key "category" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	// Test helper function
	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "base_url",
			message:  "must be an absolute URL",
			expected: `validation failed for field "base_url": must be an absolute URL`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("save", "attribute_not_exists(PK)")

	// Test error message
	expected := "condition check failed for save operation: attribute_not_exists(PK)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrConditionFailed) {
		t.Error("ConditionFailedError should match ErrConditionFailed")
	}

	// Test helper function
	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("Post", "123")
	wrapped := fmt.Errorf("database operation failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrIntegrity,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}

func TestIntegrityErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "duplicate slug",
			err:      NewDuplicateSlugError("foo", 1),
			expected: `integrity violation: slug "foo" already used by item 1`,
		},
		{
			name:     "tag mismatch",
			err:      NewTagMismatchError("pkg.Post", "pkg.Media"),
			expected: `integrity violation: type tag mismatch, expected "pkg.Post", got "pkg.Media"`,
		},
		{
			name:     "key",
			err:      NewKeyError("category"),
			expected: `integrity violation: no item with key "category"`,
		},
		{
			name:     "index",
			err:      NewIndexError(5, 3),
			expected: "integrity violation: index 5 out of range [0:3]",
		},
		{
			name:     "naive timestamp",
			err:      NewNaiveTimestampError("pub_date"),
			expected: `integrity violation: timestamp "pub_date" has no timezone`,
		},
		{
			name:     "generic",
			err:      NewIntegrityError("timestamp has no timezone", ""),
			expected: "integrity violation: timestamp has no timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}
			if !IsIntegrity(tt.err) {
				t.Error("IsIntegrity should return true")
			}
			if !IsIntegrity(fmt.Errorf("wrapped: %w", tt.err)) {
				t.Error("IsIntegrity should work with wrapped errors")
			}
		})
	}

	if !IsAlreadyExists(NewDuplicateSlugError("foo", 1)) {
		t.Error("DuplicateSlugError should match ErrAlreadyExists")
	}
	if !IsNotFound(NewKeyError(3)) {
		t.Error("KeyError should match ErrNotFound")
	}
	if IsIntegrity(NewNotFoundError("Post", "1")) {
		t.Error("NotFoundError should not be an integrity violation")
	}
}
