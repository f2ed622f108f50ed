// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-call-recorder/internal/metrics"
	"github.com/MKhiriev/go-call-recorder/internal/service"
	"github.com/MKhiriev/go-call-recorder/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redirectToCall(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, callPathPrefix+"call-1", http.StatusFound)
}

func executeIdempotency(h *Handler, idempotencyKey string, withUser bool, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, recordPath, nil))
	if withUser {
		req = withTestUser(req)
	}
	if idempotencyKey != "" {
		req.Header.Set(idempotencyKeyHeader, idempotencyKey)
	}
	rr := httptest.NewRecorder()
	h.withIdempotency(next).ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// withRegionReplay
// ─────────────────────────────────────────────

func TestWithRegionReplay_ShortCircuits(t *testing.T) {
	replayed := testutil.ToFloat64(metrics.SubmissionsTotal.WithLabelValues(metrics.ResultReplayed))

	h := newTestHandlerWithServices(&service.Services{
		ReplayService: &mockReplayService{
			regionReplayFn: func(method string) (models.ReplayResponse, bool) {
				assert.Equal(t, http.MethodPost, method)
				return models.ReplayResponse{
					Status: http.StatusConflict,
					Header: http.Header{service.FlyReplayHeader: []string{"region=ord"}},
					Body:   []byte(service.FlyReplayHeader),
				}, true
			},
		},
	})

	nextCalled := false
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, recordPath, nil))
	rr := httptest.NewRecorder()
	h.withRegionReplay(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})).ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "region=ord", rr.Header().Get(service.FlyReplayHeader))
	assert.Equal(t, service.FlyReplayHeader, rr.Body.String())
	assert.Equal(t, replayed+1, testutil.ToFloat64(metrics.SubmissionsTotal.WithLabelValues(metrics.ResultReplayed)))
}

func TestWithRegionReplay_PassesThrough(t *testing.T) {
	h := newTestHandlerWithServices(&service.Services{ReplayService: &mockReplayService{}})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, recordPath, nil))
	rr := httptest.NewRecorder()
	h.withRegionReplay(http.HandlerFunc(redirectToCall)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
}

// ─────────────────────────────────────────────
// withIdempotency
// ─────────────────────────────────────────────

func TestWithIdempotency_ReplayedResponseShortCircuits(t *testing.T) {
	replayed := testutil.ToFloat64(metrics.SubmissionsTotal.WithLabelValues(metrics.ResultReplayed))

	h := newTestHandlerWithServices(&service.Services{
		ReplayService: &mockReplayService{
			replayFn: func(_ context.Context, req models.ReplayRequest) (models.ReplayResponse, bool) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, recordPath, req.Path)
				assert.Equal(t, testUser.ID, req.UserID)
				assert.Equal(t, "key-1", req.IdempotencyKey)
				return models.ReplayResponse{
					Status: http.StatusFound,
					Header: http.Header{"Location": []string{callPathPrefix + "call-1"}},
				}, true
			},
			releaseFn: func(context.Context, models.ReplayRequest) error {
				t.Fatal("a replayed request holds no reservation")
				return nil
			},
		},
	})

	nextCalled := false
	rr := executeIdempotency(h, "key-1", true, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, callPathPrefix+"call-1", rr.Header().Get("Location"))
	assert.Equal(t, replayed+1, testutil.ToFloat64(metrics.SubmissionsTotal.WithLabelValues(metrics.ResultReplayed)))
}

func TestWithIdempotency_UnscopedRequestsSkipReplay(t *testing.T) {
	tests := []struct {
		name           string
		idempotencyKey string
		withUser       bool
	}{
		{name: "no idempotency key", idempotencyKey: "", withUser: true},
		{name: "no user", idempotencyKey: "key-1", withUser: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWithServices(&service.Services{
				ReplayService: &mockReplayService{
					replayFn: func(context.Context, models.ReplayRequest) (models.ReplayResponse, bool) {
						t.Fatal("replay must not be consulted")
						return models.ReplayResponse{}, true
					},
					rememberFn: func(context.Context, models.ReplayRequest, models.ReplayResponse) error {
						t.Fatal("response must not be remembered")
						return nil
					},
				},
			})

			rr := executeIdempotency(h, tt.idempotencyKey, tt.withUser, http.HandlerFunc(redirectToCall))
			assert.Equal(t, http.StatusFound, rr.Code)
		})
	}
}

func TestWithIdempotency_RemembersCallRedirect(t *testing.T) {
	var remembered *models.ReplayResponse
	var rememberedReq models.ReplayRequest

	h := newTestHandlerWithServices(&service.Services{
		ReplayService: &mockReplayService{
			rememberFn: func(_ context.Context, req models.ReplayRequest, response models.ReplayResponse) error {
				rememberedReq = req
				remembered = &response
				return nil
			},
			releaseFn: func(context.Context, models.ReplayRequest) error {
				t.Fatal("a remembered key must not be released")
				return nil
			},
		},
	})

	rr := executeIdempotency(h, "key-1", true, http.HandlerFunc(redirectToCall))

	assert.Equal(t, http.StatusFound, rr.Code)
	require.NotNil(t, remembered)
	assert.Equal(t, "key-1", rememberedReq.IdempotencyKey)
	assert.Equal(t, testUser.ID, rememberedReq.UserID)
	assert.Equal(t, http.StatusFound, remembered.Status)
	assert.Equal(t, callPathPrefix+"call-1", remembered.Header.Get("Location"))
}

func TestWithIdempotency_ReleasesKeyWhenNotRemembered(t *testing.T) {
	tests := []struct {
		name string
		next http.HandlerFunc
	}{
		{
			name: "login redirect",
			next: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, loginPath, http.StatusFound)
			},
		},
		{
			name: "validation failure",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "rate limited",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "server error",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			released := 0
			h := newTestHandlerWithServices(&service.Services{
				ReplayService: &mockReplayService{
					rememberFn: func(context.Context, models.ReplayRequest, models.ReplayResponse) error {
						t.Fatal("response must not be remembered")
						return nil
					},
					releaseFn: func(_ context.Context, req models.ReplayRequest) error {
						assert.Equal(t, "key-1", req.IdempotencyKey)
						released++
						return nil
					},
				},
			})

			executeIdempotency(h, "key-1", true, tt.next)
			assert.Equal(t, 1, released)
		})
	}
}

func TestWithIdempotency_ReleasesKeyOnPanic(t *testing.T) {
	released := 0
	h := newTestHandlerWithServices(&service.Services{
		ReplayService: &mockReplayService{
			releaseFn: func(context.Context, models.ReplayRequest) error {
				released++
				return nil
			},
		},
	})

	assert.Panics(t, func() {
		executeIdempotency(h, "key-1", true, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
	})
	assert.Equal(t, 1, released)
}

func TestWithIdempotency_RememberFailureKeepsResponse(t *testing.T) {
	released := 0
	h := newTestHandlerWithServices(&service.Services{
		ReplayService: &mockReplayService{
			rememberFn: func(context.Context, models.ReplayRequest, models.ReplayResponse) error {
				return errors.New("redis down")
			},
			releaseFn: func(context.Context, models.ReplayRequest) error {
				released++
				return nil
			},
		},
	})

	rr := executeIdempotency(h, "key-1", true, http.HandlerFunc(redirectToCall))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, callPathPrefix+"call-1", rr.Header().Get("Location"))
	assert.Equal(t, 1, released)
}
