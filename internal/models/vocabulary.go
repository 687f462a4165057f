package models

import "time"

// VocabularyItem represents an English/Chinese vocabulary pair.
// Reference data: created by the content importer, never mutated by the API.
type VocabularyItem struct {
	ID           int       `json:"id"`
	English      string    `json:"english"`
	Chinese      string    `json:"chinese"`
	GeptLevel    GEPTLevel `json:"geptLevel"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Frequency    int       `json:"frequency"` // corpus frequency rank, lower is more common
	Difficulty   int       `json:"difficulty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
}

// WordCandidate is a vocabulary item selected for a learning session,
// annotated with the user's current progress so the session UI can render badges
type WordCandidate struct {
	VocabularyItem
	IsNew          bool       `json:"isNew"`
	NeedsReview    bool       `json:"needsReview"`
	MemoryStrength int        `json:"memoryStrength"`
	NextReviewAt   *time.Time `json:"nextReviewAt,omitempty"`
}
