package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/repositories"
	"github.com/educreate/srs-service/internal/srs"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Exists checks whether a user row exists.
	//
	// If some error occurs during data retrieval, the error will be returned.
	Exists(ctx context.Context, userID int) (bool, error)
}

// SessionRepository is the interface that wraps methods for LearningSession table data access
type SessionRepository interface {
	// Create inserts a new learning session and sets its ID.
	Create(ctx context.Context, session *models.LearningSession) error
	// GetByID retrieves a session by ID.
	//
	// Returns repositories.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, sessionID int) (*models.LearningSession, error)
	// Finish writes the aggregate result fields exactly once.
	//
	// Returns false when no row was updated (unknown session or already finished).
	Finish(ctx context.Context, sessionID, userID int, result models.SessionResult) (bool, error)
	// GetDailyStudyTime aggregates per-day study time from finished sessions.
	GetDailyStudyTime(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]int, error)
	// GetTotals returns all-time study-day count and total study time at the level.
	GetTotals(ctx context.Context, userID int, level models.GEPTLevel) (int, int, error)
}

// WordSelector is the interface that wraps the word selection engine
type WordSelector interface {
	// SelectWords builds the candidate list for a session: due words first,
	// then new words backfill up to count.
	SelectWords(ctx context.Context, userID int, level models.GEPTLevel, count int) ([]models.WordCandidate, error)
}

// sessionService implements SessionService
type sessionService struct {
	userRepo     UserRepository
	sessionRepo  SessionRepository
	progressRepo ProgressRepository
	vocabRepo    VocabularyRepository
	selector     WordSelector
	logger       *zap.Logger
	now          func() time.Time
}

// NewSessionService creates a new session lifecycle service
func NewSessionService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	progressRepo ProgressRepository,
	vocabRepo VocabularyRepository,
	selector WordSelector,
	logger *zap.Logger,
) *sessionService {
	return &sessionService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		vocabRepo:    vocabRepo,
		selector:     selector,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateSession starts a practice round. When wordIDs are supplied (a
// teacher-curated activity) exactly those words are loaded, bypassing the
// selection engine; otherwise the selector builds the word list. A session row
// is written with counts derived from the candidate flags.
//
// Fails fast with ErrUserNotFound before anything is written.
func (s *sessionService) CreateSession(ctx context.Context, userID int, level models.GEPTLevel, wordIDs []int, count int) (*models.SessionWithWords, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check user existence", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	var words []models.WordCandidate
	if len(wordIDs) > 0 {
		words, err = s.loadCuratedWords(ctx, userID, wordIDs)
	} else {
		words, err = s.selector.SelectWords(ctx, userID, level, count)
	}
	if err != nil {
		return nil, err
	}

	newCount, reviewCount := 0, 0
	for _, w := range words {
		if w.IsNew {
			newCount++
		}
		if w.NeedsReview {
			reviewCount++
		}
	}

	session := &models.LearningSession{
		UserID:           userID,
		GeptLevel:        level,
		NewWordsCount:    newCount,
		ReviewWordsCount: reviewCount,
		TotalWords:       len(words),
		StartedAt:        s.now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("failed to create session", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.SessionWithWords{
		SessionID:   session.ID,
		Words:       words,
		NewWords:    newCount,
		ReviewWords: reviewCount,
	}, nil
}

// loadCuratedWords loads an explicit word list and annotates it with the
// user's progress flags
func (s *sessionService) loadCuratedWords(ctx context.Context, userID int, wordIDs []int) ([]models.WordCandidate, error) {
	items, err := s.vocabRepo.GetByIDs(ctx, wordIDs)
	if err != nil {
		s.logger.Error("failed to load curated words", zap.Error(err))
		return nil, fmt.Errorf("failed to load curated words: %w", err)
	}
	if len(items) != len(wordIDs) {
		return nil, ErrInvalidWordIDs
	}

	progressRows, err := s.progressRepo.GetByUserAndWordIDs(ctx, userID, wordIDs)
	if err != nil {
		s.logger.Error("failed to load progress for curated words", zap.Error(err))
		return nil, fmt.Errorf("failed to load progress for curated words: %w", err)
	}
	progressByWord := make(map[int]*models.UserWordProgress, len(progressRows))
	for i := range progressRows {
		progressByWord[progressRows[i].WordID] = &progressRows[i]
	}

	now := s.now()
	words := make([]models.WordCandidate, 0, len(items))
	for _, item := range items {
		c := models.WordCandidate{VocabularyItem: item}
		if p, ok := progressByWord[item.ID]; ok {
			c.MemoryStrength = p.MemoryStrength
			nextReview := p.NextReviewAt
			c.NextReviewAt = &nextReview
			c.NeedsReview = p.ReviewCount > 0 && !p.NextReviewAt.After(now)
			c.IsNew = p.ReviewCount == 0
		} else {
			c.IsNew = true
		}
		words = append(words, c)
	}

	return words, nil
}

// RecordAnswer grades one answer and persists the result. This is the only
// path that mutates progress: quality is computed from correctness and
// latency, the SM-2 step runs against the current snapshot, and the progress
// upsert plus review-log insert commit in one transaction.
//
// A repeated submission for the same (session, word) pair is an idempotent
// no-op: the stored progress is returned unchanged.
func (s *sessionService) RecordAnswer(ctx context.Context, userID, sessionID, wordID int, isCorrect bool, responseTimeMs int) (*models.UserWordProgress, error) {
	if responseTimeMs < 0 {
		return nil, fmt.Errorf("%w: responseTime must not be negative", ErrValidation)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("failed to load session", zap.Int("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		// Do not reveal other users' sessions
		return nil, ErrSessionNotFound
	}
	if session.IsFinished() {
		return nil, ErrSessionFinished
	}

	now := s.now()
	var current models.UserWordProgress
	existing, err := s.progressRepo.GetByUserAndWord(ctx, userID, wordID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// First exposure to this word
		current = srs.NewProgress(userID, wordID, now)
	case err != nil:
		s.logger.Error("failed to load progress", zap.Int("user_id", userID), zap.Int("word_id", wordID), zap.Error(err))
		return nil, fmt.Errorf("failed to load progress: %w", err)
	default:
		current = *existing
	}

	quality := srs.CalculateQuality(isCorrect, responseTimeMs)
	updated := srs.ApplyGrade(current, quality, now)

	review := &models.WordReview{
		SessionID:      sessionID,
		UserID:         userID,
		WordID:         wordID,
		IsCorrect:      isCorrect,
		ResponseTimeMs: responseTimeMs,
		Quality:        quality,
		ReviewedAt:     now,
	}

	err = s.progressRepo.ApplyAnswer(ctx, &updated, review)
	if errors.Is(err, repositories.ErrDuplicateReview) {
		s.logger.Warn("duplicate answer ignored",
			zap.Int("session_id", sessionID),
			zap.Int("word_id", wordID),
		)
		return &current, nil
	}
	if err != nil {
		s.logger.Error("failed to apply answer", zap.Int("word_id", wordID), zap.Error(err))
		return nil, fmt.Errorf("failed to apply answer: %w", err)
	}

	return &updated, nil
}

// FinishSession writes the aggregate result fields. The update is guarded so
// it can only ever happen once; finishing an already-finished session is a
// no-op and never changes the committed aggregates.
func (s *sessionService) FinishSession(ctx context.Context, userID, sessionID int, result models.SessionResult) error {
	if result.TotalAnswers < 0 || result.CorrectAnswers < 0 || result.DurationSeconds < 0 {
		return fmt.Errorf("%w: aggregate fields must not be negative", ErrValidation)
	}
	if result.CorrectAnswers > result.TotalAnswers {
		return fmt.Errorf("%w: correctAnswers cannot exceed totalAnswers", ErrValidation)
	}

	updated, err := s.sessionRepo.Finish(ctx, sessionID, userID, result)
	if err != nil {
		s.logger.Error("failed to finish session", zap.Int("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to finish session: %w", err)
	}
	if updated {
		return nil
	}

	// Nothing matched: distinguish unknown from already-finished
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("failed to load session", zap.Int("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID {
		return ErrSessionNotFound
	}

	// Already finished: idempotent no-op
	return nil
}
