// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/service"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/MKhiriev/go-call-recorder/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockCallService struct {
	submitFn  func(ctx context.Context, userID string, submission models.RecordingSubmission) (models.Call, error)
	getCallFn func(ctx context.Context, userID string, callID string) (models.Call, error)
}

func (m *mockCallService) SubmitRecording(ctx context.Context, userID string, submission models.RecordingSubmission) (models.Call, error) {
	return m.submitFn(ctx, userID, submission)
}

func (m *mockCallService) GetCall(ctx context.Context, userID string, callID string) (models.Call, error) {
	return m.getCallFn(ctx, userID, callID)
}

type mockReplayService struct {
	regionReplayFn func(method string) (models.ReplayResponse, bool)
	replayFn       func(ctx context.Context, req models.ReplayRequest) (models.ReplayResponse, bool)
	rememberFn     func(ctx context.Context, req models.ReplayRequest, response models.ReplayResponse) error
	releaseFn      func(ctx context.Context, req models.ReplayRequest) error
}

func (m *mockReplayService) RegionReplay(method string) (models.ReplayResponse, bool) {
	if m.regionReplayFn == nil {
		return models.ReplayResponse{}, false
	}
	return m.regionReplayFn(method)
}

func (m *mockReplayService) Replay(ctx context.Context, req models.ReplayRequest) (models.ReplayResponse, bool) {
	if m.replayFn == nil {
		return models.ReplayResponse{}, false
	}
	return m.replayFn(ctx, req)
}

func (m *mockReplayService) Remember(ctx context.Context, req models.ReplayRequest, response models.ReplayResponse) error {
	if m.rememberFn == nil {
		return nil
	}
	return m.rememberFn(ctx, req, response)
}

func (m *mockReplayService) Release(ctx context.Context, req models.ReplayRequest) error {
	if m.releaseFn == nil {
		return nil
	}
	return m.releaseFn(ctx, req)
}

type mockHealthService struct {
	health models.Health
	err    error
}

func (m *mockHealthService) Check(_ context.Context) (models.Health, error) {
	return m.health, m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testUser = models.User{
	ID:        "0199c6a4-6a1e-7c0e-9d7b-3f1b2c4d5e6f",
	Email:     "kody@example.com",
	FirstName: "Kody",
	Team:      models.TeamBlue,
}

func newTestHandlerWithServices(services *service.Services) *Handler {
	return &Handler{
		services:  services,
		templates: mustParseTemplates(),
		logger:    logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withTestUser stores testUser in the request context the way auth does.
func withTestUser(r *http.Request) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), testUser))
}
