package services

import (
	"context"
	"errors"
	"testing"

	"github.com/educreate/srs-service/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewVocabularyService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	vocabRepo := &mockVocabularyRepository{}

	svc := NewVocabularyService(vocabRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, vocabRepo, svc.vocabRepo)
	assert.Equal(t, logger, svc.logger)
}

func TestVocabularyService_ImportWords(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	word := func(english, chinese string) models.VocabularyItem {
		return models.VocabularyItem{English: english, Chinese: chinese, PartOfSpeech: "n.", Difficulty: 2}
	}

	tests := []struct {
		name             string
		words            []models.VocabularyItem
		vocabRepo        *mockVocabularyRepository
		expectedError    error
		errorContains    string
		expectedImported int
		expectedTotal    int
	}{
		{
			name:             "imports all words and reports the level total",
			words:            []models.VocabularyItem{word("apple", "蘋果"), word("banana", "香蕉")},
			vocabRepo:        &mockVocabularyRepository{count: 120},
			expectedImported: 2,
			expectedTotal:    120,
		},
		{
			name:          "empty batch is rejected",
			words:         nil,
			vocabRepo:     &mockVocabularyRepository{},
			expectedError: ErrValidation,
			errorContains: "words must not be empty",
		},
		{
			name:          "missing english word rejects the batch",
			words:         []models.VocabularyItem{word("apple", "蘋果"), word("  ", "香蕉")},
			vocabRepo:     &mockVocabularyRepository{},
			expectedError: ErrValidation,
			errorContains: "words[1]",
		},
		{
			name:          "missing chinese translation rejects the batch",
			words:         []models.VocabularyItem{word("apple", "")},
			vocabRepo:     &mockVocabularyRepository{},
			expectedError: ErrValidation,
		},
		{
			name:          "database error on upsert",
			words:         []models.VocabularyItem{word("apple", "蘋果")},
			vocabRepo:     &mockVocabularyRepository{upsertErr: errors.New("database error")},
			errorContains: "failed to upsert vocabulary item",
		},
		{
			name:          "database error on count",
			words:         []models.VocabularyItem{word("apple", "蘋果")},
			vocabRepo:     &mockVocabularyRepository{countErr: errors.New("database error")},
			errorContains: "failed to count vocabulary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVocabularyService(tt.vocabRepo, logger)

			imported, total, err := svc.ImportWords(context.Background(), models.GEPTElementary, tt.words)

			if tt.expectedError != nil || tt.errorContains != "" {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedImported, imported)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}

func TestVocabularyService_ImportWords_Normalization(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	vocabRepo := &mockVocabularyRepository{count: 1}
	svc := NewVocabularyService(vocabRepo, logger)

	words := []models.VocabularyItem{
		// Level and difficulty on the item are overridden by the import
		{English: " apple ", Chinese: " 蘋果 ", GeptLevel: models.GEPTHighIntermediate},
	}
	imported, _, err := svc.ImportWords(context.Background(), models.GEPTElementary, words)

	assert.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Len(t, vocabRepo.upserted, 1)
	assert.Equal(t, "apple", vocabRepo.upserted[0].English)
	assert.Equal(t, "蘋果", vocabRepo.upserted[0].Chinese)
	assert.Equal(t, models.GEPTElementary, vocabRepo.upserted[0].GeptLevel)
	assert.Equal(t, DefaultDifficulty, vocabRepo.upserted[0].Difficulty)
}

func TestVocabularyService_ImportWords_NoWritesOnInvalidBatch(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	vocabRepo := &mockVocabularyRepository{}
	svc := NewVocabularyService(vocabRepo, logger)

	words := []models.VocabularyItem{
		{English: "apple", Chinese: "蘋果"},
		{English: "", Chinese: "香蕉"},
	}
	_, _, err := svc.ImportWords(context.Background(), models.GEPTIntermediate, words)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, vocabRepo.upserted)
}
