// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-appointment-intake/internal/config"
	"github.com/MKhiriev/go-appointment-intake/internal/logger"
)

const idleTimeout = 60 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener

	// listening is closed once the listener is open.
	listening chan struct{}

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			// the handler timeout is RequestTimeout, leave room to write the 504
			WriteTimeout: cfg.RequestTimeout + time.Second,
			IdleTimeout:  idleTimeout,
			ErrorLog:     log.New(logger, "", 0),
		},
		listening: make(chan struct{}),
		logger:    logger,
	}
}

func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}

	h.listener = listener
	close(h.listening)

	return nil
}

func (h *httpServer) addr() string {
	return h.listener.Addr().String()
}

// serve blocks until the server is shut down. A clean shutdown is not an
// error.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
