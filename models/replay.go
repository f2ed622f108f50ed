// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// ReplayResponse is a response produced without running the normal handler:
// either one remembered for an idempotency key or a region replay instruction.
type ReplayResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header,omitempty"`
	Body   []byte      `json:"body,omitempty"`
}

// Write copies the replayed response to w.
func (r ReplayResponse) Write(w http.ResponseWriter) {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(r.Status)
	if len(r.Body) > 0 {
		_, _ = w.Write(r.Body)
	}
}

// ReplayRequest identifies a request for replay purposes.
type ReplayRequest struct {
	Method string
	Path   string

	// UserID is the authenticated user; keys are never shared across users.
	UserID string

	// IdempotencyKey is the client-supplied Idempotency-Key header value.
	IdempotencyKey string
}

// Scoped reports whether the request can take part in idempotency replay:
// it needs both a client key and an authenticated user.
func (r ReplayRequest) Scoped() bool {
	return r.IdempotencyKey != "" && r.UserID != ""
}
