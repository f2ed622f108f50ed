package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/store"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/MKhiriev/go-call-recorder/models"
)

// FlyReplayHeader asks the edge proxy to re-run the request in another region.
const FlyReplayHeader = "fly-replay"

const (
	// replayReservationTTL bounds how long a crashed request can hold its
	// idempotency key. It must outlast the request timeout.
	replayReservationTTL = 2 * time.Minute

	replayRetryAfter = time.Second
)

type replayService struct {
	replayStorage store.ReplayStorage

	hashKey       string
	flyRegion     string
	primaryRegion string
	ttl           time.Duration

	logger *logger.Logger
}

func NewReplayService(replayStorage store.ReplayStorage, cfg config.App, logger *logger.Logger) ReplayService {
	return &replayService{
		replayStorage: replayStorage,
		hashKey:       cfg.HashKey,
		flyRegion:     cfg.FlyRegion,
		primaryRegion: cfg.PrimaryRegion,
		ttl:           cfg.IdempotencyTTL,
		logger:        logger,
	}
}

// RegionReplay answers a mutating request received outside the primary
// region with 409 and a fly-replay header naming the primary region.
func (s *replayService) RegionReplay(method string) (models.ReplayResponse, bool) {
	if !s.shouldReplayToPrimary(method) {
		return models.ReplayResponse{}, false
	}

	header := make(http.Header)
	header.Set(FlyReplayHeader, "region="+s.primaryRegion)
	return models.ReplayResponse{
		Status: http.StatusConflict,
		Header: header,
		Body:   []byte(FlyReplayHeader),
	}, true
}

// Replay reserves the idempotency key of req for its user. When the key was
// reserved earlier it returns the remembered response, or a conflict while
// the first request is still being handled.
//
// Storage failures are logged and treated as "no replay".
func (s *replayService) Replay(ctx context.Context, req models.ReplayRequest) (models.ReplayResponse, bool) {
	if !req.Scoped() {
		return models.ReplayResponse{}, false
	}

	log := logger.FromContext(ctx)
	key := s.storageKey(req)

	reserved, err := s.replayStorage.ReserveReplay(ctx, key, replayReservationTTL)
	if err != nil {
		log.Warn().Err(err).Str("path", req.Path).Msg("idempotency key reservation failed")
		return models.ReplayResponse{}, false
	}
	if reserved {
		return models.ReplayResponse{}, false
	}

	response, err := s.replayStorage.GetReplay(ctx, key)
	switch {
	case err == nil:
		return response, true
	case errors.Is(err, store.ErrReplayInFlight), errors.Is(err, store.ErrReplayNotFound):
		// not found: the holder released the key between the two calls
		return inFlightResponse(), true
	default:
		log.Warn().Err(err).Str("path", req.Path).Msg("replay lookup failed")
		return models.ReplayResponse{}, false
	}
}

func (s *replayService) Remember(ctx context.Context, req models.ReplayRequest, response models.ReplayResponse) error {
	if !req.Scoped() {
		return nil
	}

	if err := s.replayStorage.SaveReplay(ctx, s.storageKey(req), response, s.ttl); err != nil {
		return fmt.Errorf("error remembering response: %w", err)
	}

	return nil
}

func (s *replayService) Release(ctx context.Context, req models.ReplayRequest) error {
	if !req.Scoped() {
		return nil
	}

	if err := s.replayStorage.ReleaseReplay(ctx, s.storageKey(req)); err != nil {
		return fmt.Errorf("error releasing idempotency key: %w", err)
	}

	return nil
}

func (s *replayService) shouldReplayToPrimary(method string) bool {
	if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
		return false
	}
	if s.flyRegion == "" || s.primaryRegion == "" {
		return false
	}
	return s.flyRegion != s.primaryRegion
}

// storageKey never exposes the raw client key to the store.
func (s *replayService) storageKey(req models.ReplayRequest) string {
	return utils.HashString(req.UserID+" "+req.Method+" "+req.Path+" "+req.IdempotencyKey, s.hashKey)
}

func inFlightResponse() models.ReplayResponse {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Retry-After", strconv.Itoa(int(replayRetryAfter.Seconds())))
	return models.ReplayResponse{
		Status: http.StatusConflict,
		Header: header,
		Body:   []byte(`{"error":"idempotency_key_in_use","message":"a request with this Idempotency-Key is still being processed"}`),
	}
}
