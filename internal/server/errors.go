package server

import "errors"

// ErrNothingToServe is returned by NewServer when no HTTP handler was built
// or no listen address is configured.
var ErrNothingToServe = errors.New("server: no HTTP handler or listen address configured")
