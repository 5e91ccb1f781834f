// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the validation core of the appointment
// intake form.
//
// Core concepts:
//   - FieldValidator: a pure decision function over one raw form value
//     ([models.Field]). It either accepts the value or rejects it with exactly
//     one human-readable message from a fixed catalog.
//   - Validator: generic interface to validate a whole structure, with
//     optional field-level scoping. [IntakeValidator] implements it for
//     [models.AppointmentRequest].
//
// Every field validator is an ordered list of rules evaluated until the
// first failure, so a value with several defects reports only the first one.
// Injection filtering is one explicit stage of those lists. It is a heuristic
// (see patterns.go) and not a security boundary on its own.
//
// All validators are stateless and safe for concurrent use. The date
// validator reads the current day through an injectable clock.
package validators

import (
	"context"

	"github.com/MKhiriev/go-appointment-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// FieldValidator validates a single raw form value.
type FieldValidator interface {
	// Validate returns nil when f is accepted, or a *ValidationError carrying
	// the first violated rule.
	Validate(f models.Field) error

	// Check is the pair form of Validate: accepted is true iff message is empty.
	Check(f models.Field) (accepted bool, message string)
}
