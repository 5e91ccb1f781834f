// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSON keys of the intake form.
const (
	KeyPatientName     = "patient_name"
	KeyPatientEmail    = "patient_email"
	KeyPhoneNumber     = "phone_number"
	KeyAppointmentDate = "appointment_date"
	KeyAppointmentTime = "appointment_time"
	KeyReason          = "reason"
	KeyNotes           = "notes"
)

// AppointmentRequest is the untrusted intake form as submitted by a client.
//
// Every validated field is a [Field] so that "missing", "not a string" and
// "string" can be told apart after JSON decoding. Reason and Notes are not
// validated and are kept as raw JSON.
type AppointmentRequest struct {
	PatientName     Field
	PatientEmail    Field
	PhoneNumber     Field
	AppointmentDate Field
	AppointmentTime Field

	Reason json.RawMessage
	Notes  json.RawMessage
}

// UnmarshalJSON decodes the form from a JSON object while preserving the
// presence state of every validated field.
func (r *AppointmentRequest) UnmarshalJSON(b []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("appointment request must be a JSON object")
	}

	field := func(key string) Field {
		raw, ok := body[key]
		return FieldFromJSON(raw, ok)
	}

	*r = AppointmentRequest{
		PatientName:     field(KeyPatientName),
		PatientEmail:    field(KeyPatientEmail),
		PhoneNumber:     field(KeyPhoneNumber),
		AppointmentDate: field(KeyAppointmentDate),
		AppointmentTime: field(KeyAppointmentTime),
		Reason:          body[KeyReason],
		Notes:           body[KeyNotes],
	}

	return nil
}

// Appointment is a stored, already validated appointment.
type Appointment struct {
	ID              int64   `json:"id"`
	PatientName     string  `json:"patient_name"`
	PatientEmail    string  `json:"patient_email"`
	PhoneNumber     string  `json:"phone_number"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Reason          string  `json:"reason"`
	Notes           *string `json:"notes"`
}

// CreateAppointmentResponse is returned after a successful intake.
type CreateAppointmentResponse struct {
	ID          int64       `json:"id"`
	Appointment Appointment `json:"appointment"`
}

// SearchResponse lists appointments matched by a name query.
type SearchResponse struct {
	Count   int           `json:"count"`
	Results []Appointment `json:"results"`
}

// NotesRequest carries the new notes of an appointment. A null or missing
// value clears them.
type NotesRequest struct {
	Notes json.RawMessage `json:"notes"`
}

// NewNotesRequest builds the request that sets notes, or clears them when
// notes is nil.
func NewNotesRequest(notes *string) NotesRequest {
	if notes == nil {
		return NotesRequest{}
	}

	raw, _ := json.Marshal(*notes)
	return NotesRequest{Notes: raw}
}

// UnmarshalJSON requires a JSON object and matches the notes key exactly.
func (r *NotesRequest) UnmarshalJSON(b []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("notes request must be a JSON object")
	}

	*r = NotesRequest{Notes: body[KeyNotes]}
	return nil
}

// Text returns the notes as stored: strings verbatim, other JSON values as
// their JSON text, nil for null or a missing key.
func (r NotesRequest) Text() *string {
	text, ok := JSONText(r.Notes)
	if !ok {
		return nil
	}
	return &text
}

// NotesResponse is returned after notes were updated.
type NotesResponse struct {
	ID    int64   `json:"id"`
	Notes *string `json:"notes"`
}

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body of the service root endpoint.
type StatusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// JSONText converts an unvalidated JSON value into text: strings are taken
// as is, other values keep their JSON representation. ok is false for a
// missing value or null.
func JSONText(raw json.RawMessage) (text string, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
		return s, true
	}

	return trimmed, true
}

// TextFromJSON is [JSONText] with surrounding whitespace removed, the way
// the intake form stores its free-text fields.
func TextFromJSON(raw json.RawMessage) (text string, ok bool) {
	text, ok = JSONText(raw)
	return TrimSpace(text), ok
}
