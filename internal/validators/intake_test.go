// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-appointment-intake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRequest() models.AppointmentRequest {
	return models.AppointmentRequest{
		PatientName:     models.StringField("John Doe"),
		PatientEmail:    models.StringField("john@example.com"),
		PhoneNumber:     models.StringField("555-123-4567"),
		AppointmentDate: models.StringField("2025-01-15"),
		AppointmentTime: models.StringField("14:30"),
	}
}

func newTestIntakeValidator() Validator {
	return NewIntakeValidator(fixedClock(2025, time.January, 1))
}

// ---------------------------------------------------------------------------
// TestIntakeValidator_Dispatch
// ---------------------------------------------------------------------------

func TestIntakeValidator_Dispatch(t *testing.T) {
	v := newTestIntakeValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var req *models.AppointmentRequest
		require.ErrorIs(t, v.Validate(ctx, req), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRequest()))
	})

	t.Run("pointer", func(t *testing.T) {
		req := validRequest()
		require.NoError(t, v.Validate(ctx, &req))
	})
}

// ---------------------------------------------------------------------------
// TestIntakeValidator_Order
// ---------------------------------------------------------------------------

func TestIntakeValidator_Order(t *testing.T) {
	v := newTestIntakeValidator()
	ctx := context.Background()

	t.Run("all fields invalid reports the name", func(t *testing.T) {
		err := v.Validate(ctx, models.AppointmentRequest{})
		require.Error(t, err)
		assert.Equal(t, MsgNameRequired, err.Error())
	})

	tests := []struct {
		name    string
		mutate  func(r *models.AppointmentRequest)
		field   string
		message string
	}{
		{
			name:    "email after name",
			mutate:  func(r *models.AppointmentRequest) { r.PatientEmail = models.StringField("nope"); r.PhoneNumber = models.AbsentField() },
			field:   FieldPatientEmail,
			message: MsgEmailNoAt,
		},
		{
			name:    "phone after email",
			mutate:  func(r *models.AppointmentRequest) { r.PhoneNumber = models.StringField("055-123-4567"); r.AppointmentDate = models.AbsentField() },
			field:   FieldPhoneNumber,
			message: MsgPhoneInvalidAreaCode,
		},
		{
			name:    "date after phone",
			mutate:  func(r *models.AppointmentRequest) { r.AppointmentDate = models.StringField("2025-01-01"); r.AppointmentTime = models.AbsentField() },
			field:   FieldAppointmentDate,
			message: MsgDateNotFuture,
		},
		{
			name:    "time last",
			mutate:  func(r *models.AppointmentRequest) { r.AppointmentTime = models.WrongTypeField() },
			field:   FieldAppointmentTime,
			message: MsgTimeNotString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			require.Error(t, err)

			vErr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
		})
	}
}

// ---------------------------------------------------------------------------
// TestIntakeValidator_Fields
// ---------------------------------------------------------------------------

func TestIntakeValidator_Fields(t *testing.T) {
	v := newTestIntakeValidator()
	ctx := context.Background()

	req := validRequest()
	req.PatientName = models.StringField("J")

	t.Run("scoped to a valid field", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, req, FieldPatientEmail, FieldPhoneNumber))
	})

	t.Run("scoped to the invalid field", func(t *testing.T) {
		err := v.Validate(ctx, req, FieldPatientName)
		require.ErrorIs(t, err, ErrLengthViolation)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validRequest(), "reason")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestIntakeValidator_FromJSON
// ---------------------------------------------------------------------------

func TestIntakeValidator_FromJSON(t *testing.T) {
	v := newTestIntakeValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name: "valid",
			body: `{"patient_name":"John Doe","patient_email":"john@example.com","phone_number":"555-123-4567",
				"appointment_date":"2025-01-15","appointment_time":"14:30","reason":"Checkup"}`,
		},
		{
			name:    "null name is missing",
			body:    `{"patient_name":null}`,
			message: MsgNameRequired,
		},
		{
			name:    "numeric name is wrong type",
			body:    `{"patient_name":42}`,
			message: MsgNameNotString,
		},
		{
			name:    "numeric phone is wrong type",
			body:    `{"patient_name":"John Doe","patient_email":"john@example.com","phone_number":5551234567}`,
			message: MsgPhoneNotString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.AppointmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			ok, msg := Result(v.Validate(ctx, req))
			assert.Equal(t, tt.message == "", ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}
