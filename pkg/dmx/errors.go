package dmx

import "errors"

// Sentinel errors for construction-time validation failures, matched
// with errors.Is by callers that need to classify a failure.
var (
	ErrInvalidChannel    = errors.New("invalid channel")
	ErrInvalidUniverseId = errors.New("invalid universe id")
	ErrParseAddress      = errors.New("malformed address")
)
