// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	ErrListen   = errors.New("error opening listener")
	ErrServe    = errors.New("server stopped unexpectedly")
	ErrShutdown = errors.New("error shutting down server")
)
