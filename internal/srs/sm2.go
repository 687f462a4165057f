package srs

import (
	"math"
	"time"

	"github.com/educreate/srs-service/internal/models"
)

const (
	// InitialEaseFactor is assigned to a word on first exposure
	InitialEaseFactor = 2.5
	// MinEaseFactor is the SM-2 floor below which the ease factor never drops
	MinEaseFactor = 1.3
	// MasteryThreshold is the memory strength at which a word counts as mastered
	MasteryThreshold = 80

	maxMemoryStrength = 100
)

// ApplyGrade runs one step of the SM-2 recurrence against a progress snapshot
// and returns the updated snapshot. The input is not modified.
//
// Quality < 3 means the word was forgotten: the interval resets to one day and
// memory strength drops. Quality >= 3 grows the interval by the ease factor and
// raises memory strength. Status moves NEW -> LEARNING on the first successful
// grade, LEARNING -> MASTERED once strength reaches the mastery threshold, and
// MASTERED regresses to LEARNING when a failed review pulls strength below it.
func ApplyGrade(p models.UserWordProgress, quality int, now time.Time) models.UserWordProgress {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	ease := p.EaseFactor
	if ease == 0 {
		ease = InitialEaseFactor
	}

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floored at 1.3
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var interval int
	if quality < 3 {
		// Forgotten: start over regardless of how long the interval was
		interval = 1
	} else {
		switch p.IntervalDays {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = int(math.Ceil(float64(p.IntervalDays) * ease))
		}
	}

	strength := p.MemoryStrength
	if quality >= 3 {
		strength += 8 + 4*(quality-3)
		if strength > maxMemoryStrength {
			strength = maxMemoryStrength
		}
	} else {
		strength -= 10 + 5*(2-quality)
		if strength < 0 {
			strength = 0
		}
	}

	p.EaseFactor = ease
	p.IntervalDays = interval
	p.MemoryStrength = strength
	p.NextReviewAt = now.AddDate(0, 0, interval)
	reviewedAt := now
	p.LastReviewedAt = &reviewedAt

	p.ReviewCount++
	if quality >= 3 {
		p.CorrectCount++
	} else {
		p.IncorrectCount++
	}

	switch {
	case p.Status == models.StatusNew && quality >= 3:
		p.Status = models.StatusLearning
		if p.FirstLearnedAt == nil {
			learnedAt := now
			p.FirstLearnedAt = &learnedAt
		}
	case p.Status != models.StatusNew && strength >= MasteryThreshold:
		p.Status = models.StatusMastered
	case p.Status == models.StatusMastered && strength < MasteryThreshold:
		p.Status = models.StatusLearning
	}

	return p
}

// NewProgress builds the initial progress snapshot for a word the user has
// never seen. The word is immediately due so it can be graded within the
// session that introduced it.
func NewProgress(userID, wordID int, now time.Time) models.UserWordProgress {
	return models.UserWordProgress{
		UserID:         userID,
		WordID:         wordID,
		MemoryStrength: 0,
		Status:         models.StatusNew,
		IntervalDays:   0,
		EaseFactor:     InitialEaseFactor,
		NextReviewAt:   now,
	}
}
