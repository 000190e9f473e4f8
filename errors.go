// errors.go: structured error handling for xanthos cache operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes.
// The cache's own operations are Option-shaped (value, ok) and never return
// errors; the codes below serve configuration, hot reload, integrations, and
// invariant violations, which are programming bugs surfaced as panics that
// carry a coded error.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	"github.com/agilira/go-errors"
)

// Error codes for Xanthos cache operations
const (
	// Configuration errors
	ErrCodeInvalidConfig          errors.ErrorCode = "XANTHOS_INVALID_CONFIG"
	ErrCodeInvalidInitialCapacity errors.ErrorCode = "XANTHOS_INVALID_INITIAL_CAPACITY"
	ErrCodeInvalidPredicate       errors.ErrorCode = "XANTHOS_INVALID_PREDICATE"
	ErrCodeInvalidHasher          errors.ErrorCode = "XANTHOS_INVALID_HASHER"

	// Hot reload errors
	ErrCodeConfigPathRequired errors.ErrorCode = "XANTHOS_CONFIG_PATH_REQUIRED"
	ErrCodeConfigParseFailed  errors.ErrorCode = "XANTHOS_CONFIG_PARSE_FAILED"

	// Internal errors
	ErrCodeInternalError  errors.ErrorCode = "XANTHOS_INTERNAL_ERROR"
	ErrCodeDequeCorrupted errors.ErrorCode = "XANTHOS_DEQUE_CORRUPTED"
)

// Common error messages
const (
	msgInvalidInitialCapacity = "invalid initial capacity: must be non-negative"
	msgInvalidPredicate       = "predicate function cannot be nil"
	msgInvalidHasher          = "hasher function cannot be nil"
	msgConfigPathRequired     = "config path is required"
	msgConfigParseFailed      = "failed to parse configuration value"
	msgInternalError          = "internal cache error"
	msgDequeCorrupted         = "entry node does not belong to the expected deque"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidInitialCapacity creates an error for a negative initial capacity
func NewErrInvalidInitialCapacity(n int) error {
	return errors.NewWithContext(ErrCodeInvalidInitialCapacity, msgInvalidInitialCapacity, map[string]interface{}{
		"provided_capacity": n,
		"minimum_required":  0,
	})
}

// NewErrInvalidPredicate creates an error for a nil invalidation predicate
func NewErrInvalidPredicate(operation string) error {
	return errors.NewWithField(ErrCodeInvalidPredicate, msgInvalidPredicate, "operation", operation)
}

// NewErrInvalidHasher creates an error for a nil hasher function
func NewErrInvalidHasher() error {
	return errors.NewWithField(ErrCodeInvalidHasher, msgInvalidHasher, "operation", "NewCacheWithHasher")
}

// =============================================================================
// HOT RELOAD ERRORS
// =============================================================================

// NewErrConfigPathRequired creates an error when no config path is given
func NewErrConfigPathRequired() error {
	return errors.NewWithField(ErrCodeConfigPathRequired, msgConfigPathRequired, "operation", "NewHotConfig")
}

// NewErrConfigParseFailed creates an error for an unparseable config value
func NewErrConfigParseFailed(key string, value interface{}) error {
	return errors.NewWithContext(ErrCodeConfigParseFailed, msgConfigParseFailed, map[string]interface{}{
		"key":   key,
		"value": value,
	})
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrDequeCorrupted creates an error for a node found on the wrong deque.
// The cache panics with this error: the condition is a programming bug, not
// a recoverable state.
func NewErrDequeCorrupted(expected, actual string) error {
	return errors.NewWithContext(ErrCodeDequeCorrupted, msgDequeCorrupted, map[string]interface{}{
		"expected_deque": expected,
		"actual_deque":   actual,
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidConfig) ||
		errors.HasCode(err, ErrCodeInvalidInitialCapacity) ||
		errors.HasCode(err, ErrCodeInvalidPredicate) ||
		errors.HasCode(err, ErrCodeInvalidHasher)
}

// IsInternalError checks if error is an internal error
func IsInternalError(err error) bool {
	return errors.HasCode(err, ErrCodeInternalError) ||
		errors.HasCode(err, ErrCodeDequeCorrupted)
}
