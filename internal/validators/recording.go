package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/MKhiriev/go-call-recorder/models"
)

const (
	FieldAudio       = "audio"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldKeywords    = "keywords"
)

// Length bounds of the text fields, in UTF-16 code units: the unit browsers
// count for maxlength and String.length.
const (
	TitleMinLength       = 5
	TitleMaxLength       = 80
	DescriptionMinLength = 20
	DescriptionMaxLength = 1000
	KeywordsMinLength    = 2
	KeywordsMaxLength    = 100
)

var allRecordingFields = []string{FieldAudio, FieldTitle, FieldDescription, FieldKeywords}

// RecordingValidator validates recorder form submissions.
type RecordingValidator struct{}

func NewRecordingValidator() Validator {
	return &RecordingValidator{}
}

// Validate checks a [models.RecordingSubmission]. Every requested field is
// checked independently; when any fails, a [FieldErrors] holding all failing
// fields is returned.
func (v *RecordingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordingSubmission:
		return v.validateSubmission(value, fields...)
	case *models.RecordingSubmission:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubmission(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordingValidator) validateSubmission(submission models.RecordingSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = allRecordingFields
	}

	fieldErrors := make(FieldErrors)
	for _, f := range fields {
		var msg *string
		switch f {
		case FieldAudio:
			msg = ErrorForAudio(submission.Audio)
		case FieldTitle:
			msg = ErrorForTitle(submission.Title)
		case FieldDescription:
			msg = ErrorForDescription(submission.Description)
		case FieldKeywords:
			msg = ErrorForKeywords(submission.Keywords)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}

		if msg != nil {
			fieldErrors[f] = *msg
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	return nil
}

// ErrorForAudio checks the recorded audio. It accepts either a data URL with
// an audio/* media type and base64 payload or a bare base64 string.
func ErrorForAudio(audio *string) *string {
	if audio == nil || *audio == "" {
		return message("Audio file is required")
	}

	payload := *audio
	if strings.HasPrefix(payload, "data:") {
		header, data, found := strings.Cut(strings.TrimPrefix(payload, "data:"), ",")
		if !found || !strings.HasPrefix(header, "audio/") || !strings.HasSuffix(header, ";base64") {
			return message("Audio file must be an audio recording")
		}
		payload = data
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(decoded) == 0 {
		return message("Audio file must be base64 encoded")
	}

	return nil
}

func ErrorForTitle(title *string) *string {
	return errorForText("Title", title, TitleMinLength, TitleMaxLength)
}

func ErrorForDescription(description *string) *string {
	return errorForText("Description", description, DescriptionMinLength, DescriptionMaxLength)
}

func ErrorForKeywords(keywords *string) *string {
	return errorForText("Keywords", keywords, KeywordsMinLength, KeywordsMaxLength)
}

func errorForText(name string, value *string, minLength, maxLength int) *string {
	if value == nil || *value == "" {
		return message(name + " is required")
	}

	length := utf16Length(*value)
	if length < minLength {
		return message(fmt.Sprintf("%s must be at least %d characters", name, minLength))
	}
	if length > maxLength {
		return message(fmt.Sprintf("%s must be no longer than %d characters", name, maxLength))
	}

	return nil
}

func message(s string) *string {
	return &s
}

// utf16Length counts s the way a browser does: characters outside the Basic
// Multilingual Plane, such as most emoji, take two units.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
