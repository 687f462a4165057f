package services

import "errors"

var (
	// ErrUserNotFound is returned when the target user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned for unknown sessions and for sessions
	// owned by a different user
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionFinished is returned when answers are submitted to a
	// finalized session
	ErrSessionFinished = errors.New("session is already finished")
	// ErrInvalidWordIDs is returned when a curated session references words
	// that do not exist
	ErrInvalidWordIDs = errors.New("one or more word IDs do not exist")
	// ErrValidation wraps request-level validation failures
	ErrValidation = errors.New("validation failed")
)
