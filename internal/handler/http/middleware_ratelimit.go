// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/go-chi/httprate"
)

// withSubmitRateLimit limits recorder submissions per client IP using a
// sliding window counter. Rejected requests get 429 with Retry-After set to
// the window length in seconds.
func (h *Handler) withSubmitRateLimit() func(http.Handler) http.Handler {
	limit := h.cfg.SubmitRateLimit
	if limit <= 0 {
		limit = config.DefaultSubmitRateLimit
	}
	window := h.cfg.SubmitRateWindow
	if window <= 0 {
		window = config.DefaultSubmitRateWindow
	}

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_ip", r.RemoteAddr).Msg("submission rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			_, _ = utils.WriteJSON(w, map[string]string{
				"error":  "rate_limit_exceeded",
				"detail": "Too many submissions. Please try again later.",
			}, http.StatusTooManyRequests)
		}),
	)
}
