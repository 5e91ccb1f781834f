// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the appointment
// intake API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression and request timeouts are
// handled here before requests are delegated to the service layer.
package http
