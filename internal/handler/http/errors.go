// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSession is returned when the request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoSession = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a well-formed bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the session cookie is present but empty.
	ErrEmptyToken = errors.New("empty session token")

	// ErrMissingUser is returned by handlers behind auth when the request
	// context holds no user.
	ErrMissingUser = errors.New("no user in request context")
)
