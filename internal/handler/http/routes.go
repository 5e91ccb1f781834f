// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.index)
	router.Get("/api/version/", h.getServerVersion)

	router.Post("/api/appointments", h.createAppointment)
	router.Get("/api/appointments/search", h.searchAppointments)
	router.Get("/api/appointments/{id:[0-9]+}", h.getAppointment)
	router.Post("/api/appointments/{id:[0-9]+}/notes", h.updateNotes)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
