// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/MKhiriev/go-appointment-intake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneValidator_Validate(t *testing.T) {
	v := NewPhoneValidator()

	tests := []struct {
		name    string
		value   string
		kind    error
		message string
	}{
		{name: "dashes", value: "555-123-4567"},
		{name: "parentheses with space", value: "(555) 123-4567"},
		{name: "parentheses without space", value: "(555)123-4567"},
		{name: "dots", value: "555.123.4567"},
		{name: "bare digits", value: "5551234567"},
		{name: "surrounding whitespace", value: "  555-123-4567 "},
		{name: "no-break space after area code", value: "(555)\u00a0123-4567"},
		{name: "information separator trimmed", value: "555-123-4567\x1f"},
		{name: "unicode spaces trimmed", value: "\u2003555-123-4567\u3000"},

		{name: "empty", value: "", kind: ErrEmptyValue, message: MsgPhoneEmpty},
		{name: "blank", value: "   ", kind: ErrEmptyValue, message: MsgPhoneEmpty},
		{name: "injection before letters", value: "555-123-4567; DROP TABLE users", kind: ErrInjectionSignature, message: MsgPhoneInvalidChars},
		{name: "select from across unicode space", value: "SELECT\u00a0a FROM b", kind: ErrInjectionSignature, message: MsgPhoneInvalidChars},
		{name: "select glued to a letter", value: "éSELECT a FROM b", kind: ErrCharacterSetViolation, message: MsgPhoneLetters},
		{name: "letters", value: "555-CALL-NOW", kind: ErrCharacterSetViolation, message: MsgPhoneLetters},
		{name: "extension letter is a letter first", value: "555x1234567", kind: ErrCharacterSetViolation, message: MsgPhoneLetters},
		{name: "plus is a metacharacter first", value: "+1-555-123-4567", kind: ErrCharacterSetViolation, message: MsgPhoneInvalidChars},
		{name: "letters win over metacharacters", value: "555-123-4567|ls", kind: ErrCharacterSetViolation, message: MsgPhoneLetters},
		{name: "pipe", value: "555|123|4567", kind: ErrCharacterSetViolation, message: MsgPhoneInvalidChars},
		{name: "quote", value: "555-123-4567'", kind: ErrCharacterSetViolation, message: MsgPhoneInvalidChars},
		{name: "hash", value: "#555-123-4567", kind: ErrCharacterSetViolation, message: MsgPhoneInvalidChars},
		{name: "control character", value: "555-123\t4567", kind: ErrCharacterSetViolation, message: MsgPhoneControlChars},
		{name: "country prefix dash", value: "1-555-123-4567", kind: ErrFormatMismatch, message: MsgPhoneCountryPrefix},
		{name: "country prefix space", value: "1 555 123 4567", kind: ErrFormatMismatch, message: MsgPhoneCountryPrefix},
		{name: "comma extension", value: "555-123-4567,89", kind: ErrFormatMismatch, message: MsgPhoneExtension},
		{name: "wrong grouping", value: "555-1234-567", kind: ErrFormatMismatch, message: MsgPhoneFormat},
		{name: "spaces only", value: "555 123 4567", kind: ErrFormatMismatch, message: MsgPhoneFormat},
		{name: "nine digits", value: "555123456", kind: ErrFormatMismatch, message: MsgPhoneFormat},
		{name: "eleven digits", value: "15551234567", kind: ErrFormatMismatch, message: MsgPhoneFormat},
		{name: "mixed separators", value: "555-123.4567", kind: ErrFormatMismatch, message: MsgPhoneFormat},
		{name: "area code starting with zero", value: "055-123-4567", kind: ErrSemanticRange, message: MsgPhoneInvalidAreaCode},
		{name: "area code starting with one", value: "(155) 123-4567", kind: ErrSemanticRange, message: MsgPhoneInvalidAreaCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(models.StringField(tt.value))
			if tt.message == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestPhoneValidator_Presence(t *testing.T) {
	v := NewPhoneValidator()

	ok, msg := v.Check(models.AbsentField())
	assert.False(t, ok)
	assert.Equal(t, MsgPhoneRequired, msg)

	ok, msg = v.Check(models.WrongTypeField())
	assert.False(t, ok)
	assert.Equal(t, MsgPhoneNotString, msg)
}

func TestHasExtension(t *testing.T) {
	assert.True(t, hasExtension("555 EXT 12"))
	assert.True(t, hasExtension("x"))
	assert.True(t, hasExtension("1,2"))
	assert.False(t, hasExtension("555-123-4567"))
}
