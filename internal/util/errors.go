package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionNotFound    = errors.New("study session not found")
	ErrSessionEnded       = errors.New("study session already ended")
	ErrTestNotFound       = errors.New("test record not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrEventNotFound      = errors.New("calendar event not found")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidScore       = errors.New("score must be between 0 and max score")
)
