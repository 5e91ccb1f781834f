// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"

	"github.com/MKhiriev/go-appointment-intake/models"
)

const FieldAppointmentTime = models.KeyAppointmentTime

const (
	MsgTimeRequired  = "Appointment time is required"
	MsgTimeNotString = "Appointment time must be a string in HH:MM format"
	MsgTimeInvalid   = "Appointment time must be a valid time in HH:MM format"
)

// TimeValidator validates the appointment time as a 24-hour HH:MM clock
// value.
type TimeValidator struct {
	presence chain[models.Field]
	rules    chain[string]
}

func NewTimeValidator() *TimeValidator {
	return &TimeValidator{
		presence: presenceRules(MsgTimeRequired, MsgTimeNotString),
		rules: chain[string]{
			{name: "clock", kind: ErrFormatMismatch, message: MsgTimeInvalid,
				ok: func(s string) bool {
					_, _, ok := ParseClock(s)
					return ok
				}},
		},
	}
}

func (v *TimeValidator) Validate(f models.Field) error {
	if err := v.presence.first(FieldAppointmentTime, f); err != nil {
		return err
	}

	raw, _ := f.Value()
	return v.rules.first(FieldAppointmentTime, raw)
}

func (v *TimeValidator) Check(f models.Field) (bool, string) {
	return Result(v.Validate(f))
}

// ParseClock parses HH:MM, optionally surrounded by whitespace.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
