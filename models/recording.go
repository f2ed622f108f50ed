// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordingSubmission is the raw content of the recorder form.
// A nil field means the key was absent from the submitted body.
type RecordingSubmission struct {
	Audio       *string
	Title       *string
	Description *string
	Keywords    *string
}

// RecordingFields is the subset of the submission echoed back to the page.
// The audio payload is deliberately absent.
type RecordingFields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Keywords    *string `json:"keywords"`
}

// RecordingErrors maps every form field to its validation message.
// A nil message means the field is valid.
type RecordingErrors struct {
	GeneralError *string `json:"generalError,omitempty"`
	Audio        *string `json:"audio"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Keywords     *string `json:"keywords"`
}

// HasFieldErrors reports whether any of the four field validators failed.
func (e RecordingErrors) HasFieldErrors() bool {
	return e.Audio != nil || e.Title != nil || e.Description != nil || e.Keywords != nil
}

// RecordingFormData is the result of a failed submission: the echoed field
// values plus per-field and general errors.
type RecordingFormData struct {
	Fields RecordingFields `json:"fields"`
	Errors RecordingErrors `json:"errors"`
}

// NewRecordingFormData echoes the non-audio fields of submission.
func NewRecordingFormData(submission RecordingSubmission) RecordingFormData {
	return RecordingFormData{
		Fields: RecordingFields{
			Title:       submission.Title,
			Description: submission.Description,
			Keywords:    submission.Keywords,
		},
	}
}
