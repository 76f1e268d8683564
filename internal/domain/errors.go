package domain

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("unsupported file format; allowed: pdf, csv")
	ErrDependencyMissing    = errors.New("pdf support is not available on this server")
	ErrConfigurationMissing = errors.New("model API key is not configured")
	ErrUpstreamFailure      = errors.New("model gateway error")
	ErrValidationFailure    = errors.New("csv validation failed")
	ErrUnreadableFile       = errors.New("file could not be read")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrEmptyMessage         = errors.New("message must not be empty")
)
