package services

import "errors"

// Validation errors returned to the caller as is.
var (
	ErrIDRequired         = errors.New("id is required")
	ErrUserIDRequired     = errors.New("userId is required")
	ErrCaptureInvalid     = errors.New("userId and rawText are required")
	ErrUserInvalid        = errors.New("email and username are required")
	ErrIdentityInvalid    = errors.New("sub and email are required")
	ErrAccountInvalid     = errors.New("provider and providerAccountId are required")
	ErrVersionUnavailable = errors.New("version information unavailable")
)
