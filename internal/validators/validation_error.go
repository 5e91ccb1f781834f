// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ValidationError is a rejection of one form field.
//
// Message is the user-facing text and is stable: it is one of the literals
// defined next to each validator's rule list. Kind is one of the rejection
// sentinels from errors.go.
type ValidationError struct {
	Field   string
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func reject(field string, kind error, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: message}
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// Result converts the outcome of a Validate call into the (accepted, message)
// pair. Errors that are not a *ValidationError are reported with their text.
func Result(err error) (bool, string) {
	if err == nil {
		return true, ""
	}
	if vErr, ok := AsValidationError(err); ok {
		return false, vErr.Message
	}
	return false, err.Error()
}
