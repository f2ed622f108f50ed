// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/metrics"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/MKhiriev/go-call-recorder/models"
)

const idempotencyKeyHeader = "Idempotency-Key"

// withRegionReplay hands mutating requests received outside the primary
// region back to the edge proxy before anything else runs.
func (h *Handler) withRegionReplay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, ok := h.services.ReplayService.RegionReplay(r.Method)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Info().Int("status", response.Status).Msg("request replayed to primary region")
		metrics.IncSubmission(metrics.ResultReplayed)
		response.Write(w)
	})
}

// withIdempotency must run after auth: keys are scoped to the session user.
//
// A request carrying an Idempotency-Key reserves the key before it is
// handled. Retries get the remembered redirect to the created call, or 409
// while the first request is still in flight. Any other outcome releases the
// key so the client can fix its input and retry with the same key.
func (h *Handler) withIdempotency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		replayRequest := models.ReplayRequest{
			Method:         r.Method,
			Path:           r.URL.Path,
			IdempotencyKey: r.Header.Get(idempotencyKeyHeader),
		}
		if user, ok := utils.GetUserFromContext(ctx); ok {
			replayRequest.UserID = user.ID
		}

		if !replayRequest.Scoped() {
			next.ServeHTTP(w, r)
			return
		}

		if response, ok := h.services.ReplayService.Replay(ctx, replayRequest); ok {
			log.Info().Int("status", response.Status).Msg("idempotent request replayed")
			metrics.IncSubmission(metrics.ResultReplayed)
			response.Write(w)
			return
		}

		// the client may be gone by now; the key must still be settled
		settleCtx := context.WithoutCancel(ctx)
		remembered := false
		defer func() {
			if remembered {
				return
			}
			if err := h.services.ReplayService.Release(settleCtx, replayRequest); err != nil {
				log.Err(err).Msg("error releasing idempotency key")
			}
		}()

		rw := &responseWriter{ResponseWriter: w, captureBody: true}
		next.ServeHTTP(rw, r)

		// only the redirect to a created call is remembered; failures must
		// not stick to the key
		location := w.Header().Get("Location")
		if rw.statusOrOK() != http.StatusFound || !strings.HasPrefix(location, callPathPrefix) {
			return
		}

		response := models.ReplayResponse{
			Status: http.StatusFound,
			Header: http.Header{"Location": []string{location}},
			Body:   rw.body,
		}

		if err := h.services.ReplayService.Remember(settleCtx, replayRequest, response); err != nil {
			log.Err(err).Msg("error remembering response for idempotency key")
			return
		}
		remembered = true
	})
}
