// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-appointment-intake/models"
)

// rule is a single named check of a validator. ok reports whether the value
// passes. When explain is set it provides the kind and message for the
// particular failing value, otherwise kind and message are used.
type rule[T any] struct {
	name    string
	kind    error
	message string
	ok      func(T) bool
	explain func(T) (error, string)
}

// chain is an ordered rule list. Order is part of the observable behaviour:
// it decides which message surfaces when a value breaks several rules.
type chain[T any] []rule[T]

// first returns the rejection of the first failing rule, or nil.
func (c chain[T]) first(field string, v T) error {
	for _, r := range c {
		if r.ok(v) {
			continue
		}
		if r.explain != nil {
			kind, message := r.explain(v)
			return reject(field, kind, message)
		}
		return reject(field, r.kind, r.message)
	}
	return nil
}

// presenceRules is the common head of every field validator: the value must
// be provided and must be a string.
func presenceRules(requiredMsg, wrongTypeMsg string) chain[models.Field] {
	return chain[models.Field]{
		{
			name:    "required",
			kind:    ErrMissingValue,
			message: requiredMsg,
			ok:      func(f models.Field) bool { return !f.IsAbsent() },
		},
		{
			name:    "string",
			kind:    ErrTypeMismatch,
			message: wrongTypeMsg,
			ok:      func(f models.Field) bool { return f.Presence() == models.Present },
		},
	}
}
