// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-appointment-intake/models"
)

const (
	FieldPhoneNumber = models.KeyPhoneNumber

	phoneDigits = 10
)

const (
	MsgPhoneRequired         = "Phone number is required"
	MsgPhoneNotString        = "Phone number must be a string"
	MsgPhoneEmpty            = "Phone number must not be empty"
	MsgPhoneInvalidChars     = "Phone number contains invalid characters"
	MsgPhoneLetters          = "Phone number must not contain letters"
	MsgPhoneControlChars     = "Phone number contains invalid control characters"
	MsgPhoneCountryCode      = "Phone number must be in US format (no country code)"
	MsgPhoneCountryPrefix    = "Phone number must be in US format (no country code prefix)"
	MsgPhoneExtension        = "Phone number must not include extensions"
	MsgPhoneFormat           = "Phone number must be in a valid US format: XXX-XXX-XXXX, (XXX) XXX-XXXX, XXX.XXX.XXXX, or XXXXXXXXXX"
	MsgPhoneInvalidAreaCode  = "Invalid area code (cannot start with 0 or 1)"
	msgPhoneDigitCountFormat = "Phone number must contain exactly 10 digits (found %d)"
)

// PhoneValidator validates 10-digit US phone numbers without country code or
// extension.
//
// The security rules (injection, letters, metacharacters, control
// characters) run before format matching, so a hostile value is always
// reported for the security reason.
type PhoneValidator struct {
	presence chain[models.Field]
	rules    chain[string]
}

// NewPhoneValidator constructs a PhoneValidator.
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{
		presence: presenceRules(MsgPhoneRequired, MsgPhoneNotString),
		rules: chain[string]{
			{name: "not_empty", kind: ErrEmptyValue, message: MsgPhoneEmpty,
				ok: func(s string) bool { return s != "" }},
			{name: "injection", kind: ErrInjectionSignature, message: MsgPhoneInvalidChars,
				ok: func(s string) bool { return !sqlXSSPattern.MatchString(s) }},
			{name: "no_letters", kind: ErrCharacterSetViolation, message: MsgPhoneLetters,
				ok: func(s string) bool { return !containsLetter(s) }},
			{name: "no_metacharacters", kind: ErrCharacterSetViolation, message: MsgPhoneInvalidChars,
				ok: func(s string) bool { return !strings.ContainsAny(s, phoneDangerousChars) }},
			{name: "no_control", kind: ErrCharacterSetViolation, message: MsgPhoneControlChars,
				ok: func(s string) bool { return !containsControl(s) }},
			{name: "no_plus_prefix", kind: ErrFormatMismatch, message: MsgPhoneCountryCode,
				ok: func(s string) bool { return !strings.HasPrefix(s, "+") }},
			{name: "no_country_prefix", kind: ErrFormatMismatch, message: MsgPhoneCountryPrefix,
				ok: func(s string) bool { return !strings.HasPrefix(s, "1-") && !strings.HasPrefix(s, "1 ") }},
			{name: "no_extension", kind: ErrFormatMismatch, message: MsgPhoneExtension,
				ok: func(s string) bool { return !hasExtension(s) }},
			{name: "format", kind: ErrFormatMismatch, message: MsgPhoneFormat,
				ok: matchesPhoneFormat},
			{name: "digit_count", ok: func(s string) bool { return len(onlyDigits(s)) == phoneDigits },
				explain: func(s string) (error, string) {
					return ErrStructuralViolation, fmt.Sprintf(msgPhoneDigitCountFormat, len(onlyDigits(s)))
				}},
			{name: "area_code", kind: ErrSemanticRange, message: MsgPhoneInvalidAreaCode,
				ok: func(s string) bool {
					first := onlyDigits(s)[0]
					return first != '0' && first != '1'
				}},
		},
	}
}

// Validate checks f against the phone rules on its trimmed value.
func (v *PhoneValidator) Validate(f models.Field) error {
	if err := v.presence.first(FieldPhoneNumber, f); err != nil {
		return err
	}

	raw, _ := f.Value()
	return v.rules.first(FieldPhoneNumber, models.TrimSpace(raw))
}

func (v *PhoneValidator) Check(f models.Field) (bool, string) {
	return Result(v.Validate(f))
}

func hasExtension(s string) bool {
	lower := strings.ToLower(s)
	for _, indicator := range phoneExtensionIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func matchesPhoneFormat(s string) bool {
	for _, format := range phoneFormats {
		if format.MatchString(s) {
			return true
		}
	}
	return false
}
