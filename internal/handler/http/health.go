// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
)

// health reports liveness: 200 when the database answers a ping, 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := http.StatusOK
	health, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		log.Err(err).Msg("health check failed")
		status = http.StatusServiceUnavailable
	}

	if _, err = utils.WriteJSON(w, health, status); err != nil {
		log.Err(err).Msg("error writing health")
	}
}
