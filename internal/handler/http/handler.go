// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	templates *pageTemplates

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		templates: mustParseTemplates(),
		logger:    logger,
	}
}
