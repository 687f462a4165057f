package models

import "time"

// WordReview is one answer event inside a session. Append-only; the unique
// (sessionId, wordId) key makes repeated submissions for the same word no-ops.
type WordReview struct {
	ID             int       `json:"id"`
	SessionID      int       `json:"sessionId"`
	UserID         int       `json:"userId"`
	WordID         int       `json:"wordId"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs int       `json:"responseTimeMs"`
	Quality        int       `json:"quality"` // 0-5 score fed into the SM-2 recurrence
	ReviewedAt     time.Time `json:"reviewedAt"`
}
