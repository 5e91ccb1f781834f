// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the appointment intake API.
//
// [IntakeAdapter] decouples callers from the transport. The package ships an
// HTTP implementation ([NewHTTPIntakeAdapter]) built on resty. Non-2xx
// responses are mapped to the sentinel errors in errors.go, so callers can
// use [errors.Is] (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
// The server's {"error": "..."} message is carried in the error text.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-appointment-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IntakeAdapter talks to a running intake server.
type IntakeAdapter interface {
	// Create submits a raw JSON intake form. The form is sent as is so that
	// the server sees missing and mistyped fields exactly as the caller
	// wrote them.
	Create(ctx context.Context, form json.RawMessage) (models.CreateAppointmentResponse, error)

	// Get fetches one appointment by id.
	Get(ctx context.Context, id int64) (models.Appointment, error)

	// Search lists appointments whose patient name contains name,
	// case-insensitively.
	Search(ctx context.Context, name string) (models.SearchResponse, error)

	// UpdateNotes overwrites the notes of an appointment. nil clears them.
	UpdateNotes(ctx context.Context, id int64, notes *string) (models.NotesResponse, error)

	// Health calls the service root endpoint.
	Health(ctx context.Context) (models.StatusResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
