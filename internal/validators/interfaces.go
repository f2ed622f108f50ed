// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the call recorder.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: the error returned when one or more named fields fail,
//     carrying a user-facing message per field.
//   - ErrorForAudio, ErrorForTitle, ErrorForDescription, ErrorForKeywords:
//     the individual form field checks. Each returns a message or nil.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
