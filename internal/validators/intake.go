// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-appointment-intake/models"
)

// IntakeOrder is the fixed order in which intake fields are validated when no
// explicit field list is given.
var IntakeOrder = []string{
	FieldPatientName,
	FieldPatientEmail,
	FieldPhoneNumber,
	FieldAppointmentDate,
	FieldAppointmentTime,
}

// IntakeValidator implements the Validator interface for
// models.AppointmentRequest. It runs the field validators in IntakeOrder and
// stops at the first rejection.
type IntakeValidator struct {
	validators map[string]FieldValidator
}

// NewIntakeValidator constructs an IntakeValidator whose date rules read
// today from clock (nil means time.Now).
func NewIntakeValidator(clock Clock) Validator {
	return &IntakeValidator{
		validators: map[string]FieldValidator{
			FieldPatientName:     NewNameValidator(),
			FieldPatientEmail:    NewEmailValidator(),
			FieldPhoneNumber:     NewPhoneValidator(),
			FieldAppointmentDate: NewDateValidator(clock),
			FieldAppointmentTime: NewTimeValidator(),
		},
	}
}

// Validate validates an AppointmentRequest (value or pointer). Optional
// fields restrict validation to the named subset, evaluated in the given
// order. Returns ErrUnsupportedType for any other input and ErrUnknownField
// for a field name outside IntakeOrder.
func (v *IntakeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AppointmentRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.AppointmentRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IntakeValidator) validateRequest(_ context.Context, req models.AppointmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = IntakeOrder
	}

	for _, f := range fields {
		validator, ok := v.validators[f]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		if err := validator.Validate(fieldOf(req, f)); err != nil {
			return err
		}
	}

	return nil
}

func fieldOf(req models.AppointmentRequest, name string) models.Field {
	switch name {
	case FieldPatientName:
		return req.PatientName
	case FieldPatientEmail:
		return req.PatientEmail
	case FieldPhoneNumber:
		return req.PhoneNumber
	case FieldAppointmentDate:
		return req.AppointmentDate
	case FieldAppointmentTime:
		return req.AppointmentTime
	default:
		return models.AbsentField()
	}
}
