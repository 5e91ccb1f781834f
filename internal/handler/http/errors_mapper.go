// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-appointment-intake/internal/service"
	"github.com/MKhiriev/go-appointment-intake/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidAppointment:    http.StatusBadRequest,
	service.ErrEmptySearchQuery:      http.StatusBadRequest,
	service.ErrAppointmentNotFound:   http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrAppointmentNotFound: http.StatusNotFound,
	store.ErrAppointmentHasID:    http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidAppointment:  "Invalid appointment",
	service.ErrEmptySearchQuery:    msgEmptyNameQuery,
	service.ErrAppointmentNotFound: msgAppointmentMissing,
	store.ErrAppointmentNotFound:   msgAppointmentMissing,
}

const msgInternalError = "Internal server error"

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalError
}
