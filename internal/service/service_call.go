package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/store"
	"github.com/MKhiriev/go-call-recorder/models"
)

type callService struct {
	callRepository store.CallRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

// NewCallService returns the persistence core of CallService. It performs no
// validation; wrap it with NewCallValidationService.
func NewCallService(callRepository store.CallRepository, idGenerator IDGenerator, logger *logger.Logger) CallService {
	return &callService{
		callRepository: callRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// SubmitRecording builds a call from the submission and persists it.
// The submitted audio is stored as is in the Base64 column.
func (c *callService) SubmitRecording(ctx context.Context, userID string, submission models.RecordingSubmission) (models.Call, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Call{}, ErrNoUserID
	}

	call := models.Call{
		ID:          c.idGenerator.Generate(),
		Title:       valueOf(submission.Title),
		Description: valueOf(submission.Description),
		Keywords:    valueOf(submission.Keywords),
		UserID:      userID,
		Base64:      valueOf(submission.Audio),
	}

	created, err := c.callRepository.CreateCall(ctx, call)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("call_id", call.ID).Msg("call creation ended with error")
		return models.Call{}, fmt.Errorf("call creation ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Str("call_id", created.ID).Msg("call recorded")

	return created, nil
}

// GetCall loads a call and hides calls of other users behind ErrCallNotFound.
func (c *callService) GetCall(ctx context.Context, userID string, callID string) (models.Call, error) {
	call, err := c.callRepository.GetCall(ctx, callID)
	if errors.Is(err, store.ErrCallNotFound) {
		return models.Call{}, ErrCallNotFound
	}
	if err != nil {
		return models.Call{}, fmt.Errorf("call search by id failed: %w", err)
	}

	if call.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("user_id", userID).
			Str("call_id", callID).
			Msg("call requested by a user who does not own it")
		return models.Call{}, ErrCallNotFound
	}

	return call, nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
