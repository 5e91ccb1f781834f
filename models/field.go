// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Presence describes which of the three input states a [Field] is in.
type Presence int

const (
	// Absent means the value was not provided (missing key or JSON null).
	Absent Presence = iota
	// WrongType means a value was provided but it is not a string.
	WrongType
	// Present means a string value was provided.
	Present
)

// String implements fmt.Stringer.
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case WrongType:
		return "wrong_type"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// Field is a raw, untrusted form value tagged with its presence state.
//
// The raw string is kept exactly as received: validators read it but never
// rewrite it, and callers are responsible for trimming before storage.
type Field struct {
	presence Presence
	raw      string
}

// AbsentField returns a Field that was not provided.
func AbsentField() Field {
	return Field{presence: Absent}
}

// WrongTypeField returns a Field that was provided with a non-string value.
func WrongTypeField() Field {
	return Field{presence: WrongType}
}

// StringField returns a Field holding s.
func StringField(s string) Field {
	return Field{presence: Present, raw: s}
}

// FieldFromJSON classifies a raw JSON value. ok reports whether the key was
// present in the enclosing object at all.
//
// A missing key and a literal null are both Absent, a JSON string is Present,
// and any other JSON value (number, bool, object, array) is WrongType.
func FieldFromJSON(raw json.RawMessage, ok bool) Field {
	trimmed := bytes.TrimSpace(raw)
	if !ok || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return AbsentField()
	}

	if trimmed[0] != '"' {
		return WrongTypeField()
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return WrongTypeField()
	}

	return StringField(s)
}

// Presence returns the presence state of the field.
func (f Field) Presence() Presence {
	return f.presence
}

// Value returns the raw string and whether the field holds one.
func (f Field) Value() (string, bool) {
	return f.raw, f.presence == Present
}

// IsAbsent reports whether the field was not provided.
func (f Field) IsAbsent() bool {
	return f.presence == Absent
}

// TrimSpace removes the whitespace around a field value. Whitespace is the
// Unicode White_Space set plus the ASCII separators U+001C..U+001F.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
