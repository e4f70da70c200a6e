package store

import "errors"

var (
	ErrJobNotFound       = errors.New("store: job not found")
	ErrKerjaMateNotFound = errors.New("store: kerjamate not found")
	ErrNoCurrentUser     = errors.New("store: no current user")
	ErrInvalidTransition = errors.New("store: invalid job status transition")
	ErrUnknownDraftField = errors.New("store: unknown draft field")
	ErrInvalidDraftValue = errors.New("store: invalid draft value")
	ErrUnknownPersonaKey = errors.New("store: unknown persona key")
	ErrUnknownJobStatus  = errors.New("store: unknown job status")
)
