// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAppointmentNotFound is returned when a lookup or update targets an
	// appointment id that was never allocated.
	ErrAppointmentNotFound = errors.New("appointment was not found")

	// ErrAppointmentHasID is returned by Create when the appointment already
	// carries an identifier.
	ErrAppointmentHasID = errors.New("appointment already has an id")
)
