package domain

import "errors"

// Error taxonomy shared by the core and its adapters. Adapters wrap
// these with context; boundaries match with errors.Is. Only
// ErrBackendUnavailable is worth retrying.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("write conflict")
	ErrMalformedPayload   = errors.New("malformed payload")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
