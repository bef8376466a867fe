package models

import "errors"

// Sentinel errors shared across repos, services and handlers. Callers wrap
// them with %w and branch with errors.Is.
var (
	ErrAuthFailed         = errors.New("authentication failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password too weak")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrStore              = errors.New("store unavailable")
	ErrUpload             = errors.New("upload failed")
)
