package service

import (
	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/store"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
)

type Services struct {
	AuthService   AuthService
	CallService   CallService
	ReplayService ReplayService
	HealthService HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	healthService, err := NewHealthService(storages, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	callService := NewCallValidationService().
		Wrap(NewCallService(storages.CallRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		CallService:   callService,
		ReplayService: NewReplayService(storages.ReplayStorage, cfg.App, logger),
		HealthService: healthService,
	}, nil
}
