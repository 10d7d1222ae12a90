package utils

import "errors"

// Failure classes surfaced by the gateways and handlers. Handlers map
// these onto HTTP statuses and machine-stable reason strings; backing
// service details stay in the server logs.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrNotFound           = errors.New("not found")
	ErrConnection         = errors.New("database connection failed")
	ErrStorageUnavailable = errors.New("object storage unavailable")
	ErrSigning            = errors.New("url signing failed")
)

// Machine-stable reason codes returned in error payloads.
const (
	ReasonInvalidInput     = "invalid_input"
	ReasonInvalidReference = "invalid_reference"
	ReasonNotFound         = "not_found"
	ReasonUploadFailed     = "upload_failed"
	ReasonInternal         = "internal_error"
)
