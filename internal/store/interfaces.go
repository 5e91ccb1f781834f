// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-appointment-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppointmentRepository stores validated appointments for the lifetime of
// the process.
type AppointmentRepository interface {
	// Create assigns the next identifier to appointment and stores a copy.
	Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	// Get returns the appointment with the given id or ErrAppointmentNotFound.
	Get(ctx context.Context, id int64) (models.Appointment, error)
	// SearchByName returns appointments whose patient name contains query,
	// case-insensitively, in insertion order.
	SearchByName(ctx context.Context, query string) ([]models.Appointment, error)
	// UpdateNotes overwrites the notes of an appointment. nil clears them.
	UpdateNotes(ctx context.Context, id int64, notes *string) (models.Appointment, error)
	// Count returns the number of stored appointments.
	Count(ctx context.Context) (int, error)
}
