/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity or snapshot is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when an identity key or slug is already taken
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrIntegrity is returned when data breaks an invariant of the object graph.
	// It signals corrupted data or a programming error and is never repaired.
	ErrIntegrity = errors.New("integrity violation")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists || target == ErrIntegrity
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// DuplicateSlugError is returned when a container already holds an item with the slug.
type DuplicateSlugError struct {
	Slug        string
	ExistingKey string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("integrity violation: slug %q already used by item %s", e.Slug, e.ExistingKey)
}

func (e *DuplicateSlugError) Is(target error) bool {
	return target == ErrIntegrity || target == ErrAlreadyExists
}

// TagMismatchError is returned when a tagged object is reconstructed as the wrong type.
type TagMismatchError struct {
	Expected string
	Actual   string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("integrity violation: type tag mismatch, expected %q, got %q", e.Expected, e.Actual)
}

func (e *TagMismatchError) Is(target error) bool {
	return target == ErrIntegrity
}

// KeyError is returned by strict (non-defaulting) keyed access.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("integrity violation: no item with key %s", e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrIntegrity || target == ErrNotFound
}

// IndexError is returned by positional access outside the ordered sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("integrity violation: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIntegrity
}

// NaiveTimestampError is returned when a timestamp without a timezone is encoded.
type NaiveTimestampError struct {
	Field string
}

func (e *NaiveTimestampError) Error() string {
	if e.Field == "" {
		return "integrity violation: timestamp has no timezone"
	}
	return fmt.Sprintf("integrity violation: timestamp %q has no timezone", e.Field)
}

func (e *NaiveTimestampError) Is(target error) bool {
	return target == ErrIntegrity
}

// IntegrityError names a violated invariant that has no dedicated type.
type IntegrityError struct {
	Invariant string
	Detail    string
}

func (e *IntegrityError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("integrity violation: %s", e.Invariant)
	}
	return fmt.Sprintf("integrity violation: %s: %s", e.Invariant, e.Detail)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewDuplicateSlugError creates a new DuplicateSlugError
func NewDuplicateSlugError(slug string, existingKey any) error {
	return &DuplicateSlugError{Slug: slug, ExistingKey: fmt.Sprint(existingKey)}
}

// NewTagMismatchError creates a new TagMismatchError
func NewTagMismatchError(expected, actual string) error {
	return &TagMismatchError{Expected: expected, Actual: actual}
}

// NewKeyError creates a new KeyError
func NewKeyError(key any) error {
	return &KeyError{Key: fmt.Sprintf("%#v", key)}
}

// NewIndexError creates a new IndexError
func NewIndexError(index, length int) error {
	return &IndexError{Index: index, Len: length}
}

// NewNaiveTimestampError creates a new NaiveTimestampError
func NewNaiveTimestampError(field string) error {
	return &NaiveTimestampError{Field: field}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(invariant, detail string) error {
	return &IntegrityError{Invariant: invariant, Detail: detail}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsIntegrity checks if an error is an integrity violation
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}
