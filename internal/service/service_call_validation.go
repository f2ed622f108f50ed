package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-call-recorder/internal/validators"
	"github.com/MKhiriev/go-call-recorder/models"
)

// CallValidationService decorates a CallService with recorder form validation.
type CallValidationService struct {
	inner     CallService
	validator validators.Validator
}

func NewCallValidationService() CallServiceWrapper {
	return &CallValidationService{
		validator: validators.NewRecordingValidator(),
	}
}

func (v *CallValidationService) Wrap(inner CallService) CallService {
	v.inner = inner
	return v
}

// SubmitRecording runs all four field validators and only reaches the inner
// service when every one of them passes.
func (v *CallValidationService) SubmitRecording(ctx context.Context, userID string, submission models.RecordingSubmission) (models.Call, error) {
	if err := v.validator.Validate(ctx, submission); err != nil {
		return models.Call{}, fmt.Errorf("%w: %w", ErrInvalidRecording, err)
	}

	return v.inner.SubmitRecording(ctx, userID, submission)
}

func (v *CallValidationService) GetCall(ctx context.Context, userID string, callID string) (models.Call, error) {
	if callID == "" {
		return models.Call{}, ErrCallNotFound
	}

	return v.inner.GetCall(ctx, userID, callID)
}
