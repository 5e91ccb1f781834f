// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-appointment-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AppointmentServiceWrapper

// AppointmentService is the use-case layer of the intake API.
type AppointmentService interface {
	// CreateAppointment stores the intake form. Implementations that are not
	// wrapped by [AppointmentValidationService] assume a validated form.
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (models.Appointment, error)
	SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error)
	// UpdateNotes overwrites the notes of an appointment. nil clears them.
	UpdateNotes(ctx context.Context, id int64, notes *string) (models.Appointment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AppointmentServiceWrapper defines middleware composition for
// AppointmentService. Implementations wrap an existing AppointmentService to
// add behavior such as validating.
type AppointmentServiceWrapper interface {
	Wrap(AppointmentService) AppointmentService // returns a decorated AppointmentService applying additional behavior
}
