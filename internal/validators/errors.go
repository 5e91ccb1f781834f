// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Rejection kinds. Every *ValidationError unwraps to exactly one of them, so
// callers can classify a rejection with errors.Is without parsing messages.
var (
	ErrMissingValue          = errors.New("missing value")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrEmptyValue            = errors.New("empty value")
	ErrLengthViolation       = errors.New("length violation")
	ErrCharacterSetViolation = errors.New("character set violation")
	ErrInjectionSignature    = errors.New("injection signature detected")
	ErrStructuralViolation   = errors.New("structural violation")
	ErrSemanticRange         = errors.New("semantic range violation")
	ErrFormatMismatch        = errors.New("format mismatch")
)
