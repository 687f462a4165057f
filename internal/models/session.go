package models

import "time"

// LearningSession is one bounded practice round.
// Created at session start with word counts, patched exactly once at session end
// with the aggregate result fields, immutable afterwards.
type LearningSession struct {
	ID               int        `json:"id"`
	UserID           int        `json:"userId"`
	GeptLevel        GEPTLevel  `json:"geptLevel"`
	NewWordsCount    int        `json:"newWordsCount"`
	ReviewWordsCount int        `json:"reviewWordsCount"`
	TotalWords       int        `json:"totalWords"`
	CorrectAnswers   *int       `json:"correctAnswers,omitempty"`
	TotalAnswers     *int       `json:"totalAnswers,omitempty"`
	DurationSeconds  *int       `json:"duration,omitempty"`
	StartedAt        time.Time  `json:"startedAt"`
	FinishedAt       *time.Time `json:"finishedAt,omitempty"`
}

// IsFinished reports whether the session has been finalized
func (s *LearningSession) IsFinished() bool {
	return s.FinishedAt != nil
}

// SessionWithWords is the session-creation payload returned to the client
type SessionWithWords struct {
	SessionID   int             `json:"sessionId"`
	Words       []WordCandidate `json:"words"`
	NewWords    int             `json:"newWords"`
	ReviewWords int             `json:"reviewWords"`
}

// SessionResult holds the aggregate fields written by the finalization patch
type SessionResult struct {
	CorrectAnswers  int `json:"correctAnswers"`
	TotalAnswers    int `json:"totalAnswers"`
	DurationSeconds int `json:"duration"`
}
