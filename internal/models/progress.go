package models

import "time"

// ProgressStatus describes how far a user has come with a single word
type ProgressStatus string

const (
	StatusNew      ProgressStatus = "NEW"
	StatusLearning ProgressStatus = "LEARNING"
	StatusMastered ProgressStatus = "MASTERED"
)

// UserWordProgress is the per (user, word) memory record.
// At most one row exists per (userId, wordId); it is created on first exposure
// and mutated on every graded answer, never deleted.
type UserWordProgress struct {
	ID             int            `json:"id"`
	UserID         int            `json:"userId"`
	WordID         int            `json:"wordId"`
	MemoryStrength int            `json:"memoryStrength"` // 0-100
	Status         ProgressStatus `json:"status"`
	IntervalDays   int            `json:"interval"` // days until next review
	EaseFactor     float64        `json:"easeFactor"`
	ReviewCount    int            `json:"reviewCount"`
	CorrectCount   int            `json:"correctCount"`
	IncorrectCount int            `json:"incorrectCount"`
	NextReviewAt   time.Time      `json:"nextReviewAt"`
	LastReviewedAt *time.Time     `json:"lastReviewedAt,omitempty"`
	FirstLearnedAt *time.Time     `json:"firstLearnedAt,omitempty"`
}
