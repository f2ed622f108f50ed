// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Call is a persisted audio recording submitted through the recorder page,
// together with the metadata the user typed into the submission form.
//
// A Call is created once per successful submission and is never modified
// afterwards by this service.
type Call struct {
	// ID is the server-generated identifier (UUIDv7 string).
	ID string `json:"id"`

	// Title, Description and Keywords are the validated form values.
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`

	// UserID references the owner of the recording.
	UserID string `json:"user_id"`

	// Base64 is the audio payload exactly as it was submitted
	// (a data URL such as "data:audio/webm;base64,...").
	Base64 string `json:"base64"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Call.
func (c Call) TableName() string {
	return "calls"
}
