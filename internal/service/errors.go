// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidAppointment  = errors.New("invalid appointment")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrEmptySearchQuery    = errors.New("empty search query")
)
