// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/utils"
	"github.com/MKhiriev/go-appointment-intake/internal/validators"
	"github.com/MKhiriev/go-appointment-intake/models"
	"github.com/go-chi/chi/v5"
)

const serviceName = "appointment-api"

const (
	msgRequestMustBeJSON  = "Request must be JSON"
	msgBodyMustBeObject   = "Request body must be a JSON object"
	msgAppointmentMissing = "Appointment not found"
	msgEmptyNameQuery     = "Provide a non-empty 'name' query parameter"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Service: serviceName, Status: "ok"}, http.StatusOK)
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !utils.IsJSONRequest(r) {
		utils.WriteError(w, msgRequestMustBeJSON, http.StatusBadRequest)
		return
	}

	var req models.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().Err(err).Str("func", "*Handler.createAppointment").Msg("undecodable intake form")
		utils.WriteError(w, msgBodyMustBeObject, http.StatusBadRequest)
		return
	}

	appointment, err := h.services.AppointmentService.CreateAppointment(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.createAppointment")
		return
	}

	log.Info().Int64("appointment_id", appointment.ID).Msg("appointment created")
	utils.WriteJSON(w, models.CreateAppointmentResponse{ID: appointment.ID, Appointment: appointment}, http.StatusCreated)
}

func (h *Handler) getAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromRequest(r)
	if !ok {
		utils.WriteError(w, msgAppointmentMissing, http.StatusNotFound)
		return
	}

	appointment, err := h.services.AppointmentService.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.getAppointment")
		return
	}

	utils.WriteJSON(w, appointment, http.StatusOK)
}

func (h *Handler) searchAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.services.AppointmentService.SearchAppointments(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.searchAppointments")
		return
	}

	if appointments == nil {
		appointments = []models.Appointment{}
	}

	utils.WriteJSON(w, models.SearchResponse{Count: len(appointments), Results: appointments}, http.StatusOK)
}

// updateNotes checks that the appointment exists before it looks at the
// body, so an unknown id is reported as 404 even for a malformed request.
func (h *Handler) updateNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromRequest(r)
	if !ok {
		utils.WriteError(w, msgAppointmentMissing, http.StatusNotFound)
		return
	}

	if _, err := h.services.AppointmentService.GetAppointment(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "*Handler.updateNotes")
		return
	}

	if !utils.IsJSONRequest(r) {
		utils.WriteError(w, msgRequestMustBeJSON, http.StatusBadRequest)
		return
	}

	var body *models.NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		utils.WriteError(w, msgBodyMustBeObject, http.StatusBadRequest)
		return
	}

	appointment, err := h.services.AppointmentService.UpdateNotes(r.Context(), id, body.Text())
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.updateNotes")
		return
	}

	utils.WriteJSON(w, models.NotesResponse{ID: appointment.ID, Notes: appointment.Notes}, http.StatusOK)
}

// writeServiceError maps a service error to its HTTP response. Validation
// rejections carry their own user-facing message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if vErr, ok := validators.AsValidationError(err); ok {
		log.Info().Str("field", vErr.Field).Str("reason", vErr.Message).Msg("appointment rejected")
		utils.WriteError(w, vErr.Message, status)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Msg("request declined")
	}

	utils.WriteError(w, messageFromError(err), status)
}

func appointmentIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
