// Package utils provides general-purpose helper utilities
// used across different parts of the service.
// Includes tools for working with context, type-safe keys, HMAC hashing,
// HTTP response writing and content negotiation, session JWT parsing and
// identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-call-recorder/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key the auth middleware stores the authenticated
// [models.User] under.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns ok == false when no user was stored or the value has an
// unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
