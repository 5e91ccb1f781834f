// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-appointment-intake/models"
)

const (
	FieldAppointmentDate = models.KeyAppointmentDate

	// BookingWindowDays is how far ahead an appointment may be booked,
	// counted from today. The last day of the window is bookable.
	BookingWindowDays = 90
)

const (
	MsgDateRequired  = "Appointment date is required"
	MsgDateNotString = "Appointment date must be a string in YYYY-MM-DD format"
	MsgDateInvalid   = "Appointment date must be a valid date in YYYY-MM-DD format"
	MsgDateNotFuture = "Appointment date must be in the future"
	MsgDateTooFar    = "Appointment date must be within 90 days from today"
)

// Clock returns the current time. The date validator only uses its calendar
// day in the clock's location.
type Clock func() time.Time

// bookingDate is a parsed date together with the day it is judged against.
type bookingDate struct {
	date  time.Time
	today time.Time
}

// DateValidator validates the appointment date: a strict YYYY-MM-DD calendar
// date strictly after today and at most BookingWindowDays days ahead.
type DateValidator struct {
	clock    Clock
	presence chain[models.Field]
	window   chain[bookingDate]
}

// NewDateValidator constructs a DateValidator reading today from clock.
// A nil clock means time.Now.
func NewDateValidator(clock Clock) *DateValidator {
	if clock == nil {
		clock = time.Now
	}

	return &DateValidator{
		clock:    clock,
		presence: presenceRules(MsgDateRequired, MsgDateNotString),
		window: chain[bookingDate]{
			{name: "future", kind: ErrSemanticRange, message: MsgDateNotFuture,
				ok: func(b bookingDate) bool { return b.date.After(b.today) }},
			{name: "within_window", kind: ErrSemanticRange, message: MsgDateTooFar,
				ok: func(b bookingDate) bool {
					return !b.date.After(b.today.AddDate(0, 0, BookingWindowDays))
				}},
		},
	}
}

// Validate checks f against the date rules.
func (v *DateValidator) Validate(f models.Field) error {
	if err := v.presence.first(FieldAppointmentDate, f); err != nil {
		return err
	}

	raw, _ := f.Value()
	date, ok := ParseISODate(raw)
	if !ok {
		return reject(FieldAppointmentDate, ErrFormatMismatch, MsgDateInvalid)
	}

	return v.window.first(FieldAppointmentDate, bookingDate{date: date, today: v.today()})
}

func (v *DateValidator) Check(f models.Field) (bool, string) {
	return Result(v.Validate(f))
}

func (v *DateValidator) today() time.Time {
	y, m, d := v.clock().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseISODate strictly parses YYYY-MM-DD, optionally surrounded by
// whitespace, into a UTC midnight. Format errors and impossible calendar
// dates (month 13, February 30, year 0) are both reported as !ok.
func ParseISODate(s string) (time.Time, bool) {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year < 1 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}
