// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrInvalidStorageConfigs is returned when no database DSN is configured
	// or its scheme selects no supported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs is returned when the session token sign key is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs is returned when the server limits are negative.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
