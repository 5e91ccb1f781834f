// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appointment-intake/internal/validators"
	"github.com/MKhiriev/go-appointment-intake/models"
)

// AppointmentValidationService runs the intake validator in front of the
// wrapped [AppointmentService]. Rejections are returned as
// [ErrInvalidAppointment] wrapping the *validators.ValidationError.
type AppointmentValidationService struct {
	inner     AppointmentService
	validator validators.Validator
}

func NewAppointmentValidationService(validator validators.Validator) AppointmentServiceWrapper {
	return &AppointmentValidationService{
		validator: validator,
	}
}

func (v *AppointmentValidationService) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.Appointment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %w", ErrInvalidAppointment, err)
	}

	return v.inner.CreateAppointment(ctx, req)
}

func (v *AppointmentValidationService) GetAppointment(ctx context.Context, id int64) (models.Appointment, error) {
	return v.inner.GetAppointment(ctx, id)
}

func (v *AppointmentValidationService) SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	return v.inner.SearchAppointments(ctx, query)
}

func (v *AppointmentValidationService) UpdateNotes(ctx context.Context, id int64, notes *string) (models.Appointment, error) {
	return v.inner.UpdateNotes(ctx, id, notes)
}

func (v *AppointmentValidationService) Wrap(wrapped AppointmentService) AppointmentService {
	v.inner = wrapped
	return v
}
