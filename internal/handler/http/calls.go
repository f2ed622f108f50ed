// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/metrics"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/MKhiriev/go-call-recorder/internal/validators"
	"github.com/MKhiriev/go-call-recorder/models"
	"github.com/go-chi/chi/v5"
)

const callIDParam = "callId"

// submitRecording handles the recorder form post.
//
// Responses:
//   - 302 to the new call on success;
//   - 401 with the echoed fields and per-field errors when any validator fails;
//   - 500 with errors.generalError for anything else.
//
// Failures are rendered as JSON unless the client prefers HTML, in which case
// the recorder page is re-rendered with the form pre-populated.
func (h *Handler) submitRecording(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUser).Msg("submission reached handler without a user")
		h.writeSubmissionError(w, r, user, models.RecordingSubmission{}, ErrMissingUser)
		return
	}

	submission, err := h.parseSubmission(w, r)
	if err != nil {
		log.Err(err).Msg("error parsing submission")
		h.writeSubmissionError(w, r, user, submission, err)
		return
	}

	call, err := h.services.CallService.SubmitRecording(ctx, user.ID, submission)
	if err != nil {
		h.writeSubmissionError(w, r, user, submission, err)
		return
	}

	metrics.IncSubmission(metrics.ResultCreated)
	metrics.ObserveAudioBytes(len(call.Base64))

	http.Redirect(w, r, callPathPrefix+call.ID, http.StatusFound)
}

// parseSubmission reads the form body. Keys absent from the body stay nil.
func (h *Handler) parseSubmission(w http.ResponseWriter, r *http.Request) (models.RecordingSubmission, error) {
	maxBytes := h.cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return models.RecordingSubmission{}, fmt.Errorf("error reading multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return models.RecordingSubmission{}, fmt.Errorf("error reading form: %w", err)
	}

	return models.RecordingSubmission{
		Audio:       formValue(r, validators.FieldAudio),
		Title:       formValue(r, validators.FieldTitle),
		Description: formValue(r, validators.FieldDescription),
		Keywords:    formValue(r, validators.FieldKeywords),
	}, nil
}

func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}

// writeSubmissionError turns a failed submission into the form result.
func (h *Handler) writeSubmissionError(w http.ResponseWriter, r *http.Request, user models.User, submission models.RecordingSubmission, err error) {
	log := logger.FromRequest(r)
	form := models.NewRecordingFormData(submission)

	status := http.StatusInternalServerError
	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		status = http.StatusUnauthorized
		form.Errors = models.RecordingErrors{
			Audio:       fieldErrors.Message(validators.FieldAudio),
			Title:       fieldErrors.Message(validators.FieldTitle),
			Description: fieldErrors.Message(validators.FieldDescription),
			Keywords:    fieldErrors.Message(validators.FieldKeywords),
		}
		metrics.IncSubmission(metrics.ResultInvalid)
		log.Info().Str("user_id", user.ID).Err(err).Msg("submission rejected")
	} else {
		generalError := err.Error()
		form.Errors.GeneralError = &generalError
		metrics.IncSubmission(metrics.ResultFailed)
		log.Err(err).Str("user_id", user.ID).Msg("submission failed")
	}

	if utils.PrefersHTML(r) {
		h.renderPage(w, r, h.templates.record, newRecordPageData(user, submission.Audio, form), status)
		return
	}

	if _, writeErr := utils.WriteJSON(w, form, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing submission result")
	}
}

// recordPage renders the recorder for the signed-in user.
func (h *Handler) recordPage(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrMissingUser).Send()
		h.renderApology(w, r)
		return
	}

	h.renderPage(w, r, h.templates.record, newRecordPageData(user, nil, models.RecordingFormData{}), http.StatusOK)
}

// callDetail shows a call of the signed-in user. Calls of other users are
// reported as not found.
func (h *Handler) callDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrMissingUser).Send()
		h.writeError(w, r, ErrMissingUser)
		return
	}

	call, err := h.services.CallService.GetCall(ctx, user.ID, chi.URLParam(r, callIDParam))
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error loading call")
		h.writeError(w, r, err)
		return
	}

	if utils.PrefersHTML(r) {
		h.renderPage(w, r, h.templates.call, callPageData{
			Call:       call,
			AudioURL:   audioURL(call.Base64),
			RecordPath: recordPath,
		}, http.StatusOK)
		return
	}

	if _, err = utils.WriteJSON(w, call, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing call")
	}
}

// writeError reports err with the status from statusFromError. HTML clients
// get the apology page for server errors and a plain message otherwise.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if utils.PrefersHTML(r) {
		if status >= http.StatusInternalServerError {
			h.renderApology(w, r)
			return
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	_, _ = utils.WriteJSON(w, map[string]string{"error": message}, status)
}
