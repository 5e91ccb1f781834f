// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-appointment-intake/internal/utils"
	"github.com/go-chi/chi/v5"
)

const msgNotFound = "Not found"

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with a JSON error body, so a route
// called with an unsupported method looks the same as an unknown route.
// If a route with exactly the requested path does handle the method, the
// request is sent through the router again.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded during this check.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, msgNotFound, http.StatusNotFound)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
