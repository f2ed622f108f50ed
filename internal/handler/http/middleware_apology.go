// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
)

// withApology recovers from panics in recorder routes. The panic is logged
// with its stack and the visitor gets the apology page with a link back to
// the page they were on.
//
// [http.ErrAbortHandler] is re-raised so the server can abort the response.
func (h *Handler) withApology(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("panic while handling recorder route")

			h.renderApology(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}
