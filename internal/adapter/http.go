// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-appointment-intake/internal/config"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
	"github.com/MKhiriev/go-appointment-intake/internal/utils"
	"github.com/MKhiriev/go-appointment-intake/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRoot         = "/"
	pathVersion      = "/api/version/"
	pathAppointments = "/api/appointments"
	pathSearch       = "/api/appointments/search"
	pathAppointment  = "/api/appointments/{id}"
	pathNotes        = "/api/appointments/{id}/notes"
)

type httpIntakeAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPIntakeAdapter constructs an HTTP implementation of [IntakeAdapter]
// for the base URL and timeout in cfg.
func NewHTTPIntakeAdapter(cfg config.ClientAdapter, logger *logger.Logger) (IntakeAdapter, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, cfg.BaseURL)
	}

	return &httpIntakeAdapter{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func (h *httpIntakeAdapter) Create(ctx context.Context, form json.RawMessage) (models.CreateAppointmentResponse, error) {
	var created models.CreateAppointmentResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(form)).
		SetResult(&created).
		Post(pathAppointments)
	if err = h.check(resp, err, "create"); err != nil {
		return models.CreateAppointmentResponse{}, err
	}

	return created, nil
}

func (h *httpIntakeAdapter) Get(ctx context.Context, id int64) (models.Appointment, error) {
	var appointment models.Appointment

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&appointment).
		Get(pathAppointment)
	if err = h.check(resp, err, "get"); err != nil {
		return models.Appointment{}, err
	}

	return appointment, nil
}

func (h *httpIntakeAdapter) Search(ctx context.Context, name string) (models.SearchResponse, error) {
	var found models.SearchResponse

	resp, err := h.request(ctx).
		SetQueryParam("name", name).
		SetResult(&found).
		Get(pathSearch)
	if err = h.check(resp, err, "search"); err != nil {
		return models.SearchResponse{}, err
	}

	return found, nil
}

func (h *httpIntakeAdapter) UpdateNotes(ctx context.Context, id int64, notes *string) (models.NotesResponse, error) {
	var updated models.NotesResponse

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewNotesRequest(notes)).
		SetResult(&updated).
		Post(pathNotes)
	if err = h.check(resp, err, "update notes"); err != nil {
		return models.NotesResponse{}, err
	}

	return updated, nil
}

func (h *httpIntakeAdapter) Health(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.request(ctx).
		SetResult(&status).
		Get(pathRoot)
	if err = h.check(resp, err, "health"); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

func (h *httpIntakeAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get(pathVersion)
	if err = h.check(resp, err, "version"); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpIntakeAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}

// check turns a transport error or a non-2xx response into an error and
// logs the outcome.
func (h *httpIntakeAdapter) check(resp *resty.Response, err error, operation string) error {
	if err != nil {
		h.logger.Error().Err(err).Str("operation", operation).Msg("intake API request failed")
		return fmt.Errorf("%w: %s: %w", ErrRequest, operation, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("operation", operation).Int("status", resp.StatusCode()).Msg("intake API declined request")
		return err
	}

	h.logger.Debug().Str("operation", operation).Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).Msg("intake API request done")
	return nil
}
