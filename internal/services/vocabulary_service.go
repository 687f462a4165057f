package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/educreate/srs-service/internal/models"
	"go.uber.org/zap"
)

// DefaultDifficulty is assigned to imported words that do not carry one
const DefaultDifficulty = 3

// VocabularyStore is the interface that wraps methods for Vocabulary table content management
type VocabularyStore interface {
	// Upsert inserts a vocabulary item or updates the existing row with the
	// same english word and GEPT level.
	//
	// If some error occurs during data insert or update, the error will be returned.
	Upsert(ctx context.Context, item *models.VocabularyItem) error
	// CountByLevel returns the number of vocabulary items at the level.
	CountByLevel(ctx context.Context, level models.GEPTLevel) (int, error)
}

// vocabularyService implements VocabularyService
type vocabularyService struct {
	vocabRepo VocabularyStore
	logger    *zap.Logger
}

// NewVocabularyService creates a new vocabulary content service
func NewVocabularyService(vocabRepo VocabularyStore, logger *zap.Logger) *vocabularyService {
	return &vocabularyService{
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// ImportWords upserts a batch of vocabulary items at the level and returns the
// number of imported words together with the level's total after the import.
// Every item must carry an english word and a chinese translation; the batch
// is rejected on the first invalid item, before anything is written.
func (s *vocabularyService) ImportWords(ctx context.Context, level models.GEPTLevel, words []models.VocabularyItem) (int, int, error) {
	if len(words) == 0 {
		return 0, 0, fmt.Errorf("%w: words must not be empty", ErrValidation)
	}

	for i := range words {
		words[i].English = strings.TrimSpace(words[i].English)
		words[i].Chinese = strings.TrimSpace(words[i].Chinese)
		if words[i].English == "" {
			return 0, 0, fmt.Errorf("%w: words[%d] has no english word", ErrValidation, i)
		}
		if words[i].Chinese == "" {
			return 0, 0, fmt.Errorf("%w: words[%d] has no chinese translation", ErrValidation, i)
		}
	}

	imported := 0
	for i := range words {
		word := words[i]
		word.GeptLevel = level
		if word.Difficulty == 0 {
			word.Difficulty = DefaultDifficulty
		}

		if err := s.vocabRepo.Upsert(ctx, &word); err != nil {
			s.logger.Error("failed to upsert vocabulary item", zap.String("english", word.English), zap.Error(err))
			return imported, 0, fmt.Errorf("failed to upsert vocabulary item: %w", err)
		}
		imported++
	}

	total, err := s.vocabRepo.CountByLevel(ctx, level)
	if err != nil {
		s.logger.Error("failed to count vocabulary", zap.String("level", level.String()), zap.Error(err))
		return imported, 0, fmt.Errorf("failed to count vocabulary: %w", err)
	}

	return imported, total, nil
}
