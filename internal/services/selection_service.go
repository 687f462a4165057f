package services

import (
	"context"
	"fmt"

	"github.com/educreate/srs-service/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultWordCount is the session size when the client does not ask for one
	DefaultWordCount = 15
	// MaxWordCount caps the session size
	MaxWordCount = 50
)

// ProgressRepository is the interface that wraps methods for UserWordProgress table data access
type ProgressRepository interface {
	// GetDueWithWords retrieves words due for review at the given level, joined
	// with their vocabulary data, most recently reviewed first.
	//
	// "limit" parameter bounds the number of candidates returned.
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetDueWithWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.WordCandidate, error)
	// GetByUserAndWord retrieves the progress row for a (user, word) pair.
	//
	// Returns repositories.ErrNotFound if the user has never seen the word.
	GetByUserAndWord(ctx context.Context, userID, wordID int) (*models.UserWordProgress, error)
	// GetByUserAndWordIDs retrieves progress rows for a user restricted to the given word IDs.
	//
	// Words without a progress row are simply absent from the result.
	GetByUserAndWordIDs(ctx context.Context, userID int, wordIDs []int) ([]models.UserWordProgress, error)
	// ApplyAnswer persists one graded answer (progress upsert + review insert) atomically.
	//
	// Returns repositories.ErrDuplicateReview when the (session, word) pair was already graded.
	ApplyAnswer(ctx context.Context, p *models.UserWordProgress, review *models.WordReview) error
	// CountByStatus returns the user's progress-row counts at the level, broken down by status.
	CountByStatus(ctx context.Context, userID int, level models.GEPTLevel) (map[models.ProgressStatus]int, error)
	// StrengthHistogram returns the memory strength distribution in five 20-point buckets.
	StrengthHistogram(ctx context.Context, userID int, level models.GEPTLevel) ([]models.StrengthBucket, error)
	// GetRecentWords retrieves the user's most recently reviewed words at the level.
	GetRecentWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.RecentWord, error)
	// GetDetailsByLevel retrieves all per-word progress details at the level.
	GetDetailsByLevel(ctx context.Context, userID int, level models.GEPTLevel) ([]models.WordProgressDetail, error)
}

// VocabularyRepository is the interface that wraps methods for Vocabulary table data access
type VocabularyRepository interface {
	// GetByIDs retrieves vocabulary items by their IDs.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetByIDs(ctx context.Context, wordIDs []int) ([]models.VocabularyItem, error)
	// GetNewByLevel retrieves up to limit words at the level with no progress row
	// for the user, most common words first.
	GetNewByLevel(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.VocabularyItem, error)
}

// selectionService implements SelectionService
type selectionService struct {
	progressRepo ProgressRepository
	vocabRepo    VocabularyRepository
	logger       *zap.Logger
}

// NewSelectionService creates a new word selection service
func NewSelectionService(progressRepo ProgressRepository, vocabRepo VocabularyRepository, logger *zap.Logger) *selectionService {
	return &selectionService{
		progressRepo: progressRepo,
		vocabRepo:    vocabRepo,
		logger:       logger,
	}
}

// SelectWords builds the candidate list for a session: due words first (most
// recently reviewed ordering), then new words backfill up to count.
//
// A user with no progress rows gets new words only. An empty vocabulary level
// yields an empty slice, which callers must treat as a valid degenerate session.
func (s *selectionService) SelectWords(ctx context.Context, userID int, level models.GEPTLevel, count int) ([]models.WordCandidate, error) {
	if count <= 0 {
		count = DefaultWordCount
	}
	if count > MaxWordCount {
		count = MaxWordCount
	}

	candidates, err := s.progressRepo.GetDueWithWords(ctx, userID, level, count)
	if err != nil {
		s.logger.Error("failed to get due words", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get due words: %w", err)
	}

	if remaining := count - len(candidates); remaining > 0 {
		newWords, err := s.vocabRepo.GetNewByLevel(ctx, userID, level, remaining)
		if err != nil {
			s.logger.Error("failed to get new words", zap.Int("user_id", userID), zap.Error(err))
			return nil, fmt.Errorf("failed to get new words: %w", err)
		}
		for _, word := range newWords {
			candidates = append(candidates, models.WordCandidate{
				VocabularyItem: word,
				IsNew:          true,
			})
		}
	}

	if candidates == nil {
		candidates = []models.WordCandidate{}
	}

	return candidates, nil
}
