package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewSessionService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	userRepo := &mockUserRepository{}
	sessionRepo := &mockSessionRepository{}
	progressRepo := &mockProgressRepository{}
	vocabRepo := &mockVocabularyRepository{}
	selector := &mockWordSelector{}

	svc := NewSessionService(userRepo, sessionRepo, progressRepo, vocabRepo, selector, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, userRepo, svc.userRepo)
	assert.Equal(t, sessionRepo, svc.sessionRepo)
	assert.Equal(t, progressRepo, svc.progressRepo)
	assert.Equal(t, vocabRepo, svc.vocabRepo)
	assert.Equal(t, selector, svc.selector)
	assert.NotNil(t, svc.now)
}

func TestSessionService_CreateSession(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		wordIDs        []int
		userRepo       *mockUserRepository
		progressRepo   *mockProgressRepository
		vocabRepo      *mockVocabularyRepository
		selector       *mockWordSelector
		sessionRepo    *mockSessionRepository
		expectedErr    error
		expectedError  bool
		errorContains  string
		expectedWords  int
		expectedNew    int
		expectedReview int
	}{
		{
			name:     "unknown user",
			userRepo: &mockUserRepository{exists: false},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector:     &mockWordSelector{},
			sessionRepo:  &mockSessionRepository{},
			expectedErr:  ErrUserNotFound,
		},
		{
			name:     "database error on user check",
			userRepo: &mockUserRepository{err: errors.New("database error")},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector:     &mockWordSelector{},
			sessionRepo:  &mockSessionRepository{},
			expectedError: true,
			errorContains: "failed to check user existence",
		},
		{
			name:         "selected session with mixed words",
			userRepo:     &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector: &mockWordSelector{
				words: []models.WordCandidate{
					{VocabularyItem: models.VocabularyItem{ID: 1}, NeedsReview: true},
					{VocabularyItem: models.VocabularyItem{ID: 2}, NeedsReview: true},
					{VocabularyItem: models.VocabularyItem{ID: 3}, IsNew: true},
				},
			},
			sessionRepo:    &mockSessionRepository{},
			expectedWords:  3,
			expectedNew:    1,
			expectedReview: 2,
		},
		{
			name:         "empty selection is a valid degenerate session",
			userRepo:     &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector:     &mockWordSelector{words: []models.WordCandidate{}},
			sessionRepo:  &mockSessionRepository{},
			expectedWords: 0,
		},
		{
			name:     "curated session annotates progress flags",
			wordIDs:  []int{1, 2, 3},
			userRepo: &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{
				progressRows: []models.UserWordProgress{
					{WordID: 1, MemoryStrength: 60, ReviewCount: 4, NextReviewAt: now.AddDate(0, 0, -1)},
					{WordID: 2, MemoryStrength: 85, ReviewCount: 8, NextReviewAt: now.AddDate(0, 0, 5)},
				},
			},
			vocabRepo: &mockVocabularyRepository{
				items: []models.VocabularyItem{{ID: 1}, {ID: 2}, {ID: 3}},
			},
			selector:       &mockWordSelector{},
			sessionRepo:    &mockSessionRepository{},
			expectedWords:  3,
			expectedNew:    1,
			expectedReview: 1,
		},
		{
			name:     "curated session with unknown word IDs",
			wordIDs:  []int{1, 2, 999},
			userRepo: &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo: &mockVocabularyRepository{
				items: []models.VocabularyItem{{ID: 1}, {ID: 2}},
			},
			selector:    &mockWordSelector{},
			sessionRepo: &mockSessionRepository{},
			expectedErr: ErrInvalidWordIDs,
		},
		{
			name:     "database error on curated word load",
			wordIDs:  []int{1},
			userRepo: &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo: &mockVocabularyRepository{
				getByIDsErr: errors.New("database error"),
			},
			selector:      &mockWordSelector{},
			sessionRepo:   &mockSessionRepository{},
			expectedError: true,
			errorContains: "failed to load curated words",
		},
		{
			name:         "database error on selection",
			userRepo:     &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector:     &mockWordSelector{err: errors.New("database error")},
			sessionRepo:  &mockSessionRepository{},
			expectedError: true,
		},
		{
			name:         "database error on session insert",
			userRepo:     &mockUserRepository{exists: true},
			progressRepo: &mockProgressRepository{},
			vocabRepo:    &mockVocabularyRepository{},
			selector: &mockWordSelector{
				words: []models.WordCandidate{{VocabularyItem: models.VocabularyItem{ID: 1}, IsNew: true}},
			},
			sessionRepo:   &mockSessionRepository{createErr: errors.New("database error")},
			expectedError: true,
			errorContains: "failed to create session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSessionService(tt.userRepo, tt.sessionRepo, tt.progressRepo, tt.vocabRepo, tt.selector, logger)
			svc.now = func() time.Time { return now }

			result, err := svc.CreateSession(context.Background(), 1, models.GEPTElementary, tt.wordIDs, 15)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}
			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Equal(t, 42, result.SessionID)
			assert.Len(t, result.Words, tt.expectedWords)
			assert.Equal(t, tt.expectedNew, result.NewWords)
			assert.Equal(t, tt.expectedReview, result.ReviewWords)

			created := tt.sessionRepo.created
			assert.NotNil(t, created)
			assert.Equal(t, 1, created.UserID)
			assert.Equal(t, tt.expectedNew, created.NewWordsCount)
			assert.Equal(t, tt.expectedReview, created.ReviewWordsCount)
			assert.Equal(t, tt.expectedWords, created.TotalWords)
			assert.Equal(t, now, created.StartedAt)
			assert.Nil(t, created.FinishedAt)
		})
	}
}

func TestSessionService_RecordAnswer(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	finishedAt := now.Add(-time.Hour)

	openSession := &models.LearningSession{ID: 5, UserID: 1, StartedAt: now.Add(-10 * time.Minute)}
	finishedSession := &models.LearningSession{ID: 5, UserID: 1, FinishedAt: &finishedAt}

	tests := []struct {
		name           string
		userID         int
		isCorrect      bool
		responseTimeMs int
		sessionRepo    *mockSessionRepository
		progressRepo   *mockProgressRepository
		expectedErr    error
		expectedError  bool
	}{
		{
			name:           "negative response time",
			userID:         1,
			responseTimeMs: -1,
			sessionRepo:    &mockSessionRepository{session: openSession},
			progressRepo:   &mockProgressRepository{},
			expectedErr:    ErrValidation,
		},
		{
			name:           "unknown session",
			userID:         1,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{getErr: repositories.ErrNotFound},
			progressRepo:   &mockProgressRepository{},
			expectedErr:    ErrSessionNotFound,
		},
		{
			name:           "session owned by another user",
			userID:         2,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{session: openSession},
			progressRepo:   &mockProgressRepository{},
			expectedErr:    ErrSessionNotFound,
		},
		{
			name:           "finished session rejects answers",
			userID:         1,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{session: finishedSession},
			progressRepo:   &mockProgressRepository{},
			expectedErr:    ErrSessionFinished,
		},
		{
			name:           "database error on session load",
			userID:         1,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{getErr: errors.New("database error")},
			progressRepo:   &mockProgressRepository{},
			expectedError:  true,
		},
		{
			name:           "database error on progress load",
			userID:         1,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{session: openSession},
			progressRepo:   &mockProgressRepository{getErr: errors.New("database error")},
			expectedError:  true,
		},
		{
			name:           "database error on apply",
			userID:         1,
			isCorrect:      true,
			responseTimeMs: 800,
			sessionRepo:    &mockSessionRepository{session: openSession},
			progressRepo:   &mockProgressRepository{applyErr: errors.New("database error")},
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSessionService(&mockUserRepository{exists: true}, tt.sessionRepo, tt.progressRepo, &mockVocabularyRepository{}, &mockWordSelector{}, logger)
			svc.now = func() time.Time { return now }

			result, err := svc.RecordAnswer(context.Background(), tt.userID, 5, 7, tt.isCorrect, tt.responseTimeMs)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.Error(t, err)
			}
			assert.Nil(t, result)
		})
	}
}

func TestSessionService_RecordAnswer_FirstExposure(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	sessionRepo := &mockSessionRepository{
		session: &models.LearningSession{ID: 5, UserID: 1, StartedAt: now.Add(-time.Minute)},
	}
	progressRepo := &mockProgressRepository{}
	svc := NewSessionService(&mockUserRepository{exists: true}, sessionRepo, progressRepo, &mockVocabularyRepository{}, &mockWordSelector{}, logger)
	svc.now = func() time.Time { return now }

	result, err := svc.RecordAnswer(context.Background(), 1, 5, 7, true, 800)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, result.UserID)
	assert.Equal(t, 7, result.WordID)
	assert.Equal(t, 1, result.ReviewCount)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, models.StatusLearning, result.Status)
	assert.Greater(t, result.MemoryStrength, 0)
	assert.Equal(t, result, progressRepo.applied)
}

func TestSessionService_RecordAnswer_ExistingProgress(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	sessionRepo := &mockSessionRepository{
		session: &models.LearningSession{ID: 5, UserID: 1, StartedAt: now.Add(-time.Minute)},
	}
	progressRepo := &mockProgressRepository{
		progress: &models.UserWordProgress{
			UserID:         1,
			WordID:         7,
			MemoryStrength: 50,
			Status:         models.StatusLearning,
			IntervalDays:   3,
			EaseFactor:     2.5,
			ReviewCount:    3,
			CorrectCount:   2,
			IncorrectCount: 1,
			NextReviewAt:   now.AddDate(0, 0, -1),
		},
	}
	svc := NewSessionService(&mockUserRepository{exists: true}, sessionRepo, progressRepo, &mockVocabularyRepository{}, &mockWordSelector{}, logger)
	svc.now = func() time.Time { return now }

	result, err := svc.RecordAnswer(context.Background(), 1, 5, 7, false, 2000)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, result.IntervalDays)
	assert.Equal(t, 4, result.ReviewCount)
	assert.Equal(t, 2, result.IncorrectCount)
	assert.Less(t, result.MemoryStrength, 50)
	// The stored snapshot must stay untouched
	assert.Equal(t, 50, progressRepo.progress.MemoryStrength)
	assert.Equal(t, 3, progressRepo.progress.ReviewCount)
}

func TestSessionService_RecordAnswer_DuplicateIsNoOp(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	prior := &models.UserWordProgress{
		UserID:         1,
		WordID:         7,
		MemoryStrength: 62,
		Status:         models.StatusLearning,
		IntervalDays:   6,
		EaseFactor:     2.5,
		ReviewCount:    5,
		NextReviewAt:   now.AddDate(0, 0, 6),
	}
	sessionRepo := &mockSessionRepository{
		session: &models.LearningSession{ID: 5, UserID: 1, StartedAt: now.Add(-time.Minute)},
	}
	progressRepo := &mockProgressRepository{
		progress: prior,
		applyErr: repositories.ErrDuplicateReview,
	}
	svc := NewSessionService(&mockUserRepository{exists: true}, sessionRepo, progressRepo, &mockVocabularyRepository{}, &mockWordSelector{}, logger)
	svc.now = func() time.Time { return now }

	result, err := svc.RecordAnswer(context.Background(), 1, 5, 7, true, 800)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, *prior, *result)
}

func TestSessionService_FinishSession(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	finishedAt := now.Add(-time.Hour)

	tests := []struct {
		name        string
		userID      int
		result      models.SessionResult
		sessionRepo *mockSessionRepository
		expectedErr error
		expectError bool
	}{
		{
			name:        "success",
			userID:      1,
			result:      models.SessionResult{CorrectAnswers: 12, TotalAnswers: 15, DurationSeconds: 300},
			sessionRepo: &mockSessionRepository{finishUpdated: true},
		},
		{
			name:        "negative duration",
			userID:      1,
			result:      models.SessionResult{CorrectAnswers: 1, TotalAnswers: 1, DurationSeconds: -5},
			sessionRepo: &mockSessionRepository{},
			expectedErr: ErrValidation,
		},
		{
			name:        "correct exceeds total",
			userID:      1,
			result:      models.SessionResult{CorrectAnswers: 10, TotalAnswers: 5, DurationSeconds: 60},
			sessionRepo: &mockSessionRepository{},
			expectedErr: ErrValidation,
		},
		{
			name:        "unknown session",
			userID:      1,
			result:      models.SessionResult{CorrectAnswers: 1, TotalAnswers: 2, DurationSeconds: 30},
			sessionRepo: &mockSessionRepository{finishUpdated: false, getErr: repositories.ErrNotFound},
			expectedErr: ErrSessionNotFound,
		},
		{
			name:   "session owned by another user",
			userID: 2,
			result: models.SessionResult{CorrectAnswers: 1, TotalAnswers: 2, DurationSeconds: 30},
			sessionRepo: &mockSessionRepository{
				finishUpdated: false,
				session:       &models.LearningSession{ID: 5, UserID: 1, FinishedAt: &finishedAt},
			},
			expectedErr: ErrSessionNotFound,
		},
		{
			name:   "already finished is a no-op",
			userID: 1,
			result: models.SessionResult{CorrectAnswers: 1, TotalAnswers: 2, DurationSeconds: 30},
			sessionRepo: &mockSessionRepository{
				finishUpdated: false,
				session:       &models.LearningSession{ID: 5, UserID: 1, FinishedAt: &finishedAt},
			},
		},
		{
			name:        "database error on finish",
			userID:      1,
			result:      models.SessionResult{CorrectAnswers: 1, TotalAnswers: 2, DurationSeconds: 30},
			sessionRepo: &mockSessionRepository{finishErr: errors.New("database error")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSessionService(&mockUserRepository{exists: true}, tt.sessionRepo, &mockProgressRepository{}, &mockVocabularyRepository{}, &mockWordSelector{}, logger)
			svc.now = func() time.Time { return now }

			err := svc.FinishSession(context.Background(), tt.userID, 5, tt.result)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectError:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
