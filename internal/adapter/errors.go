// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrInvalidAddress = errors.New("invalid intake API address")
	ErrRequest        = errors.New("error sending request")
)
