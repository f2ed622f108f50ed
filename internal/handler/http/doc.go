// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the call recorder.
//
// It wires the chi router, the recorder page and submission handlers, the
// call detail page and the operational endpoints. Replay, session
// authentication, rate limiting, request tracing, access logging, response
// compression and panic recovery are handled in this package before requests
// are delegated to the service layer.
package http
