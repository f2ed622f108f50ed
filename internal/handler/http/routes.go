// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	recordPath     = "/calls/record/new"
	callPathPrefix = "/calls/record/"
	loginPath      = "/login"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// operational routes, no session
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.health)
		r.Handle("/metrics", promhttp.Handler())
	})

	// recorder routes
	router.Group(func(r chi.Router) {
		r.Use(h.withApology)
		r.Use(withNoIndex)

		r.With(h.withRegionReplay, h.auth, h.withIdempotency, h.withSubmitRateLimit()).Post(recordPath, h.submitRecording)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Use(h.auth)

			r.Get(recordPath, h.recordPage)
			r.Get(callPathPrefix+"{callId}", h.callDetail)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
