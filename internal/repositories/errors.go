package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateReview is returned when a (session, word) answer was already
	// recorded; callers treat it as an idempotent no-op
	ErrDuplicateReview = errors.New("review already recorded for this word in this session")
)
