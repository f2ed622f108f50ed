package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/store"
	"github.com/MKhiriev/go-call-recorder/models"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

type healthService struct {
	pinger     store.Pinger
	appVersion string

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, cfg config.App, logger *logger.Logger) (HealthService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &healthService{
		pinger:     pinger,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *healthService) Check(ctx context.Context) (models.Health, error) {
	health := models.Health{Status: HealthStatusOK, Version: s.appVersion}

	if err := s.pinger.Ping(ctx); err != nil {
		health.Status = HealthStatusUnavailable
		return health, fmt.Errorf("health check failed: %w", err)
	}

	return health, nil
}
