package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/models"
)

// callRepository is the database/sql implementation of [CallRepository]
// over the "calls" table.
type callRepository struct {
	*DB
	logger *logger.Logger
}

// NewCallRepository constructs a [CallRepository] backed by the provided
// database connection and logger.
func NewCallRepository(db *DB, logger *logger.Logger) CallRepository {
	logger.Debug().Msg("creating call repository")
	return &callRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCall inserts a single call row. CreatedAt and UpdatedAt are set to
// the current UTC time when the caller left them zero.
//
// Error handling:
//   - foreign key violation on user_id → [ErrUserNotFound].
//   - primary key collision → [ErrCallAlreadyExists].
//   - zero rows affected → [ErrCallNotSaved].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (c *callRepository) CreateCall(ctx context.Context, call models.Call) (models.Call, error) {
	log := logger.FromContext(ctx)

	if call.CreatedAt.IsZero() {
		call.CreatedAt = time.Now().UTC()
	}
	if call.UpdatedAt.IsZero() {
		call.UpdatedAt = call.CreatedAt
	}

	query, args, err := buildCreateCallQuery(c.Builder(), call)
	if err != nil {
		log.Err(err).Str("func", "*callRepository.CreateCall").Msg("failed to create query")
		return models.Call{}, err
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		switch classifyConstraint(err) {
		case foreignKeyViolation:
			return models.Call{}, ErrUserNotFound
		case uniqueViolation:
			return models.Call{}, ErrCallAlreadyExists
		}

		log.Err(err).
			Str("func", "*callRepository.CreateCall").
			Str("call_id", call.ID).
			Str("user_id", call.UserID).
			Bool("retryable", c.IsRetryable(err)).
			Msg("failed to insert call")
		return models.Call{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*callRepository.CreateCall").Msg("failed to read affected rows")
		return models.Call{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Call{}, ErrCallNotSaved
	}

	return call, nil
}

// GetCall returns the call with the given id or [ErrCallNotFound].
func (c *callRepository) GetCall(ctx context.Context, callID string) (models.Call, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCallQuery(c.Builder(), callID)
	if err != nil {
		log.Err(err).Str("func", "*callRepository.GetCall").Msg("failed to create query")
		return models.Call{}, err
	}

	var call models.Call
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(
		&call.ID,
		&call.Title,
		&call.Description,
		&call.Keywords,
		&call.UserID,
		&call.Base64,
		&call.CreatedAt,
		&call.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Call{}, ErrCallNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*callRepository.GetCall").
			Str("call_id", callID).
			Bool("retryable", c.IsRetryable(err)).
			Msg("failed to scan call")
		return models.Call{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return call, nil
}
