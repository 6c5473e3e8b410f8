package model

import "errors"

// Common errors used across the application
var (
	// Denylist errors
	ErrDenylistNotFound = errors.New("denylist data not found in storage")
)
