// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		present  bool
		want     Presence
		wantText string
	}{
		{name: "missing key", raw: "", present: false, want: Absent},
		{name: "null", raw: "null", present: true, want: Absent},
		{name: "null with spaces", raw: "  null ", present: true, want: Absent},
		{name: "string", raw: `"Alice"`, present: true, want: Present, wantText: "Alice"},
		{name: "empty string", raw: `""`, present: true, want: Present, wantText: ""},
		{name: "string keeps whitespace", raw: `"  Bob  "`, present: true, want: Present, wantText: "  Bob  "},
		{name: "escaped unicode", raw: `"José"`, present: true, want: Present, wantText: "José"},
		{name: "number", raw: "42", present: true, want: WrongType},
		{name: "bool", raw: "true", present: true, want: WrongType},
		{name: "object", raw: `{"a":1}`, present: true, want: WrongType},
		{name: "array", raw: `["a"]`, present: true, want: WrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldFromJSON(json.RawMessage(tt.raw), tt.present)
			assert.Equal(t, tt.want, f.Presence())

			text, ok := f.Value()
			assert.Equal(t, tt.want == Present, ok)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.want == Absent, f.IsAbsent())
		})
	}
}

func TestPresence_String(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "wrong_type", WrongType.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "unknown", Presence(42).String())
}

func TestFieldConstructors(t *testing.T) {
	assert.True(t, AbsentField().IsAbsent())
	assert.Equal(t, WrongType, WrongTypeField().Presence())

	v, ok := StringField("x").Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii", in: " \t\n a b \r\v\f", want: "a b"},
		{name: "information separators", in: "\x1c\x1d a \x1e\x1f", want: "a"},
		{name: "unicode spaces", in: "\u00a0\u2003\u3000a\u202f\u0085", want: "a"},
		{name: "inner space kept", in: " a b ", want: "a b"},
		{name: "other controls kept", in: "\x00a\x1b", want: "\x00a\x1b"},
		{name: "only space", in: " \x1f ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimSpace(tt.in))
		})
	}
}
