package service

import (
	"context"

	"github.com/MKhiriev/go-call-recorder/models"
)

// AuthService verifies session tokens issued by the wider application.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate parses tokenString and loads the user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// CallService records and reads call recordings.
type CallService interface {
	// SubmitRecording turns a recorder form submission of userID into a
	// persisted call. Validation failures are reported as
	// [ErrInvalidRecording] wrapping a validators.FieldErrors.
	SubmitRecording(ctx context.Context, userID string, submission models.RecordingSubmission) (models.Call, error)

	// GetCall returns the call callID if it belongs to userID.
	GetCall(ctx context.Context, userID string, callID string) (models.Call, error)
}

// ReplayService decides whether a request is answered with a precomputed
// response instead of being handled.
type ReplayService interface {
	// RegionReplay returns a fly-replay instruction and true when a request
	// with this method must be handled by the primary region.
	RegionReplay(method string) (models.ReplayResponse, bool)

	// Replay returns the response to send and true, or false when the
	// request must be handled normally. A false result for a scoped request
	// means its idempotency key is now reserved: the caller must follow up
	// with Remember or Release.
	Replay(ctx context.Context, req models.ReplayRequest) (models.ReplayResponse, bool)

	// Remember stores response for later replays of req. Requests without an
	// idempotency key or a user are ignored.
	Remember(ctx context.Context, req models.ReplayRequest, response models.ReplayResponse) error

	// Release frees the reservation of req's idempotency key when no
	// response is remembered for it.
	Release(ctx context.Context, req models.ReplayRequest) error
}

// HealthService reports service liveness for the health endpoint.
type HealthService interface {
	Check(ctx context.Context) (models.Health, error)
}

// CallServiceWrapper defines middleware composition for CallService.
// Implementations wrap an existing CallService to add behavior such as
// validating.
type CallServiceWrapper interface {
	Wrap(CallService) CallService // returns a decorated CallService applying additional behavior
}

// IDGenerator issues identifiers for new calls.
type IDGenerator interface {
	Generate() string
}
