package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	CallRepository CallRepository
	ReplayStorage  ReplayStorage

	db      *DB
	closers []io.Closer
}

// NewStorages connects to the database, applies migrations and, when a Redis
// address is configured, connects the replay storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		CallRepository: NewCallRepository(db, log),
		ReplayStorage:  noopReplayStorage{},
		db:             db,
		closers:        []io.Closer{db},
	}

	if cfg.Redis.Address == "" {
		log.Info().Msg("redis address is empty: idempotency replay disabled")
		return storages, nil
	}

	replayStorage, err := NewRedisReplayStorage(ctx, cfg.Redis, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting replay storage")
		_ = db.Close()
		return nil, err
	}
	storages.ReplayStorage = replayStorage
	storages.closers = append(storages.closers, replayStorage)

	return storages, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database is not connected")
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the Redis client and the database pool.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
