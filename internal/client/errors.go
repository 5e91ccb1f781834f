// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidID       = errors.New("appointment id must be a positive integer")
	ErrInvalidForm     = errors.New("intake form must be a JSON object")
	ErrRejectedLocally = errors.New("intake form rejected before sending")
)
