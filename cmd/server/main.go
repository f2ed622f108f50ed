// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/handler"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/server"
	"github.com/MKhiriev/go-call-recorder/internal/service"
	"github.com/MKhiriev/go-call-recorder/internal/store"
	"github.com/MKhiriev/go-call-recorder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("call-recorder-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if !buildInfo.Stamped() {
		log.Warn().Msg("binary was built without a release version")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("redis", cfg.Storage.Redis.Address != "").
		Str("fly_region", cfg.App.FlyRegion).
		Str("primary_region", cfg.App.PrimaryRegion).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("version", cfg.App.Version).Msg("call recorder started")
	srv.RunServer()
}
