// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/store"
	"github.com/MKhiriev/go-appointment-intake/models"
)

type appointmentService struct {
	repository store.AppointmentRepository

	logger *logger.Logger
}

// NewAppointmentService returns the plain [AppointmentService]. It does not
// validate the intake form; wrap it with [NewAppointmentValidationService].
func NewAppointmentService(repository store.AppointmentRepository, logger *logger.Logger) AppointmentService {
	logger.Debug().Msg("creating appointment service")
	return &appointmentService{
		repository: repository,
		logger:     logger,
	}
}

// CreateAppointment trims every form field and stores the appointment.
// Reason is always stored (empty when missing); notes only when given.
func (s *appointmentService) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	appointment := models.Appointment{}
	fields := []struct {
		key   string
		field models.Field
		dst   *string
	}{
		{models.KeyPatientName, req.PatientName, &appointment.PatientName},
		{models.KeyPatientEmail, req.PatientEmail, &appointment.PatientEmail},
		{models.KeyPhoneNumber, req.PhoneNumber, &appointment.PhoneNumber},
		{models.KeyAppointmentDate, req.AppointmentDate, &appointment.AppointmentDate},
		{models.KeyAppointmentTime, req.AppointmentTime, &appointment.AppointmentTime},
	}
	for _, f := range fields {
		value, ok := f.field.Value()
		if !ok {
			return models.Appointment{}, fmt.Errorf("%w: %s is %s", ErrInvalidAppointment, f.key, f.field.Presence())
		}
		*f.dst = models.TrimSpace(value)
	}

	appointment.Reason, _ = models.TextFromJSON(req.Reason)
	if notes, ok := models.TextFromJSON(req.Notes); ok {
		appointment.Notes = &notes
	}

	created, err := s.repository.Create(ctx, appointment)
	if err != nil {
		log.Err(err).Str("func", "*appointmentService.CreateAppointment").Msg("error storing appointment")
		return models.Appointment{}, fmt.Errorf("error storing appointment: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("appointment created")
	return created, nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, id int64) (models.Appointment, error) {
	appointment, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.Appointment{}, s.mapStoreError(err, id)
	}

	return appointment, nil
}

// SearchAppointments matches query against patient names. A blank query is
// rejected with [ErrEmptySearchQuery].
func (s *appointmentService) SearchAppointments(ctx context.Context, query string) ([]models.Appointment, error) {
	query = models.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	results, err := s.repository.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching appointments: %w", err)
	}

	return results, nil
}

func (s *appointmentService) UpdateNotes(ctx context.Context, id int64, notes *string) (models.Appointment, error) {
	appointment, err := s.repository.UpdateNotes(ctx, id, notes)
	if err != nil {
		return models.Appointment{}, s.mapStoreError(err, id)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Bool("cleared", notes == nil).Msg("appointment notes updated")
	return appointment, nil
}

func (s *appointmentService) mapStoreError(err error, id int64) error {
	if errors.Is(err, store.ErrAppointmentNotFound) {
		return fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
	}

	return fmt.Errorf("unexpected store error: %w", err)
}
