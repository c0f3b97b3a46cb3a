package errors

import "fmt"

var (
	ErrAlreadyStreaming = fmt.Errorf("user already has an active session")
	ErrNoActiveSession  = fmt.Errorf("no active session for user")
	ErrInvalidDelta     = fmt.Errorf("engagement delta must be positive")
	ErrInvalidAudience  = fmt.Errorf("audience count must not be negative")
	ErrNotPrivate       = fmt.Errorf("session is not private")
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)
