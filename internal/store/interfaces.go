package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-call-recorder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads the accounts sessions are issued for.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// CallRepository persists submitted call recordings.
type CallRepository interface {
	// CreateCall inserts call and returns it with its timestamps set.
	CreateCall(ctx context.Context, call models.Call) (models.Call, error)

	// GetCall returns the call with the given id or [ErrCallNotFound].
	GetCall(ctx context.Context, callID string) (models.Call, error)
}

// ReplayStorage remembers responses of mutating requests by idempotency key.
//
// A key is reserved before the request is handled; the reservation is then
// either replaced by the response with SaveReplay or dropped with
// ReleaseReplay.
type ReplayStorage interface {
	// ReserveReplay marks key as in flight for ttl. It reports false when the
	// key is already reserved or holds a remembered response.
	ReserveReplay(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// GetReplay returns the remembered response, [ErrReplayInFlight] while
	// the key is reserved, or [ErrReplayNotFound].
	GetReplay(ctx context.Context, key string) (models.ReplayResponse, error)

	// SaveReplay remembers response under key for ttl, replacing the
	// reservation.
	SaveReplay(ctx context.Context, key string, response models.ReplayResponse, ttl time.Duration) error

	// ReleaseReplay drops the reservation of key. A remembered response is
	// left in place.
	ReleaseReplay(ctx context.Context, key string) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
