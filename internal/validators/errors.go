package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldErrors maps a form field name to the message describing why the
// submitted value was rejected. It is returned as an error by
// [RecordingValidator.Validate]; retrieve it with errors.As.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message recorded for field, or nil when the field passed.
func (e FieldErrors) Message(field string) *string {
	msg, ok := e[field]
	if !ok {
		return nil
	}
	return &msg
}
