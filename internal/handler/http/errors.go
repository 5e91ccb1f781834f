// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidTraceID is logged when a client sends an X-Trace-ID that cannot
// be echoed back. A fresh trace ID replaces it.
var errInvalidTraceID = errors.New("invalid `X-Trace-ID` header")
