package services

import "errors"

// Service-level errors.
var (
	// ErrUnknownView is returned when a caller names a view other than
	// "table" or "grouped".
	ErrUnknownView = errors.New("unknown view")
)
