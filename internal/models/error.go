package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrValidation       = errors.New("required fields missing or empty")
	ErrStoreUnavailable = errors.New("persistence medium unavailable")
	ErrNotFound         = errors.New("resource not found")
	ErrInternalServer   = errors.New("internal server error")
)
