package services

import "errors"

// Common service errors
var (
	ErrMissingStartDate = errors.New("loan start date is required but not supplied")
	ErrInvalidConfig    = errors.New("invalid schedule configuration")
)
