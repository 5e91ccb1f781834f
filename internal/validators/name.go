// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-appointment-intake/models"
)

const (
	FieldPatientName = models.KeyPatientName

	nameMinLength = 2
	nameMaxLength = 50
)

const (
	MsgNameRequired   = "Name is required"
	MsgNameNotString  = "Name must be a string"
	MsgNameEmpty      = "Name must not be empty"
	MsgNameTooShort   = "Name must be at least 2 characters"
	MsgNameTooLong    = "Name must be no more than 50 characters"
	MsgNameMarkup     = "Name contains invalid characters"
	MsgNameInjection  = "Name contains invalid patterns"
	MsgNameNotAllowed = "Name contains invalid characters (allowed: letters, spaces, hyphen, apostrophe)"
)

// NameValidator validates the patient name.
type NameValidator struct {
	presence chain[models.Field]
	rules    chain[string]
}

// NewNameValidator constructs a NameValidator.
func NewNameValidator() *NameValidator {
	return &NameValidator{
		presence: presenceRules(MsgNameRequired, MsgNameNotString),
		rules: chain[string]{
			{name: "not_empty", kind: ErrEmptyValue, message: MsgNameEmpty,
				ok: func(s string) bool { return s != "" }},
			{name: "min_length", kind: ErrLengthViolation, message: MsgNameTooShort,
				ok: func(s string) bool { return utf8.RuneCountInString(s) >= nameMinLength }},
			{name: "max_length", kind: ErrLengthViolation, message: MsgNameTooLong,
				ok: func(s string) bool { return utf8.RuneCountInString(s) <= nameMaxLength }},
			{name: "markup", kind: ErrInjectionSignature, message: MsgNameMarkup,
				ok: func(s string) bool { return !markupPattern.MatchString(s) }},
			{name: "sql_injection", kind: ErrInjectionSignature, message: MsgNameInjection,
				ok: func(s string) bool { return !nameSQLPattern.MatchString(s) }},
			{name: "allow_list", kind: ErrCharacterSetViolation, message: MsgNameNotAllowed,
				ok: nameAllowPattern.MatchString},
		},
	}
}

// Validate checks f against the name rules on its trimmed value.
func (v *NameValidator) Validate(f models.Field) error {
	if err := v.presence.first(FieldPatientName, f); err != nil {
		return err
	}

	raw, _ := f.Value()
	return v.rules.first(FieldPatientName, models.TrimSpace(raw))
}

func (v *NameValidator) Check(f models.Field) (bool, string) {
	return Result(v.Validate(f))
}
