// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/models"
)

// appointmentRepository is the in-memory implementation of
// [AppointmentRepository].
//
// Records are kept in a map guarded by mu, and order preserves insertion
// order for searches. Identifiers are allocated while mu is held, so order is
// always ascending by id.
type appointmentRepository struct {
	mu      sync.RWMutex
	records map[int64]models.Appointment
	order   []int64

	lastID int64

	logger *logger.Logger
}

// NewAppointmentRepository constructs an empty in-memory
// [AppointmentRepository]. Identifiers start at 1.
func NewAppointmentRepository(logger *logger.Logger) AppointmentRepository {
	logger.Debug().Msg("creating appointment repository")
	return &appointmentRepository{
		records: make(map[int64]models.Appointment),
		logger:  logger,
	}
}

// Create stores a copy of appointment under a freshly allocated id.
func (r *appointmentRepository) Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	if appointment.ID != 0 {
		log.Error().Int64("id", appointment.ID).Str("func", "*appointmentRepository.Create").Msg("appointment already has an id")
		return models.Appointment{}, ErrAppointmentHasID
	}

	appointment.Notes = cloneNotes(appointment.Notes)

	r.mu.Lock()
	r.lastID++
	appointment.ID = r.lastID
	r.records[appointment.ID] = appointment
	r.order = append(r.order, appointment.ID)
	r.mu.Unlock()

	log.Debug().Int64("id", appointment.ID).Msg("appointment stored")

	return copyAppointment(appointment), nil
}

// Get returns a copy of the stored appointment.
func (r *appointmentRepository) Get(_ context.Context, id int64) (models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.records[id]
	if !ok {
		return models.Appointment{}, ErrAppointmentNotFound
	}

	return copyAppointment(appointment), nil
}

// SearchByName performs a case-insensitive substring match on the patient
// name. The query is matched as given; callers trim it.
func (r *appointmentRepository) SearchByName(_ context.Context, query string) ([]models.Appointment, error) {
	needle := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Appointment, 0)
	for _, id := range r.order {
		appointment := r.records[id]
		if strings.Contains(strings.ToLower(appointment.PatientName), needle) {
			results = append(results, copyAppointment(appointment))
		}
	}

	return results, nil
}

// UpdateNotes replaces the notes of the appointment with id.
func (r *appointmentRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.records[id]
	if !ok {
		logger.FromContext(ctx).Debug().Int64("id", id).Msg("notes update for unknown appointment")
		return models.Appointment{}, ErrAppointmentNotFound
	}

	appointment.Notes = cloneNotes(notes)
	r.records[id] = appointment

	return copyAppointment(appointment), nil
}

// Count returns the number of stored appointments.
func (r *appointmentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

func cloneNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := *notes
	return &n
}

func copyAppointment(a models.Appointment) models.Appointment {
	a.Notes = cloneNotes(a.Notes)
	return a
}
