// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appointment-intake/internal/config"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/models"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	AppointmentRepository AppointmentRepository
}

// NewStorages builds the in-memory storages and seeds the sample
// appointment unless seeding is disabled in cfg.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	repository := NewAppointmentRepository(logger)

	if !cfg.DisableSeed {
		if err := Seed(ctx, repository); err != nil {
			return nil, fmt.Errorf("error seeding appointments: %w", err)
		}
		logger.Info().Msg("sample appointment seeded")
	}

	return &Storages{AppointmentRepository: repository}, nil
}

// SampleAppointment returns the appointment inserted into an empty store so
// that a fresh service has something to fetch and search.
func SampleAppointment() models.Appointment {
	return models.Appointment{
		PatientName:     "Alice Example",
		PatientEmail:    "alice@example.org",
		PhoneNumber:     "555-000-1111",
		AppointmentDate: "2099-01-01",
		AppointmentTime: "09:00",
		Reason:          "Initial sample appointment",
	}
}

// Seed inserts [SampleAppointment] when the repository is empty.
func Seed(ctx context.Context, repository AppointmentRepository) error {
	count, err := repository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = repository.Create(ctx, SampleAppointment())
	return err
}
