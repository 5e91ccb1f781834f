// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-appointment-intake/internal/config"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/store"
	"github.com/MKhiriev/go-appointment-intake/internal/validators"
)

type Services struct {
	AppointmentService AppointmentService
	AppInfoService     AppInfoService
}

// NewServices wires the service layer. clock feeds the booking window of the
// date validator; nil means the system clock.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, clock validators.Clock, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	appointmentService := NewAppointmentValidationService(validators.NewIntakeValidator(clock)).
		Wrap(NewAppointmentService(storages.AppointmentRepository, logger))

	return &Services{
		AppointmentService: appointmentService,
		AppInfoService:     appInfoService,
	}, nil
}
