package services

import (
	"context"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/repositories"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	exists bool
	err    error
}

func (m *mockUserRepository) Exists(ctx context.Context, userID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	dueWords     []models.WordCandidate
	dueErr       error
	dueLimit     int
	progress     *models.UserWordProgress
	getErr       error
	progressRows []models.UserWordProgress
	getByIDsErr  error
	applyErr     error
	applied      *models.UserWordProgress
	statusCounts map[models.ProgressStatus]int
	countErr     error
	histogram    []models.StrengthBucket
	histErr      error
	recentWords  []models.RecentWord
	recentErr    error
	details      []models.WordProgressDetail
	detailsErr   error
}

func (m *mockProgressRepository) GetDueWithWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.WordCandidate, error) {
	m.dueLimit = limit
	if m.dueErr != nil {
		return nil, m.dueErr
	}
	return m.dueWords, nil
}

func (m *mockProgressRepository) GetByUserAndWord(ctx context.Context, userID, wordID int) (*models.UserWordProgress, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.progress == nil {
		return nil, repositories.ErrNotFound
	}
	return m.progress, nil
}

func (m *mockProgressRepository) GetByUserAndWordIDs(ctx context.Context, userID int, wordIDs []int) ([]models.UserWordProgress, error) {
	if m.getByIDsErr != nil {
		return nil, m.getByIDsErr
	}
	return m.progressRows, nil
}

func (m *mockProgressRepository) ApplyAnswer(ctx context.Context, p *models.UserWordProgress, review *models.WordReview) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied = p
	return nil
}

func (m *mockProgressRepository) CountByStatus(ctx context.Context, userID int, level models.GEPTLevel) (map[models.ProgressStatus]int, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	return m.statusCounts, nil
}

func (m *mockProgressRepository) StrengthHistogram(ctx context.Context, userID int, level models.GEPTLevel) ([]models.StrengthBucket, error) {
	if m.histErr != nil {
		return nil, m.histErr
	}
	return m.histogram, nil
}

func (m *mockProgressRepository) GetRecentWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.RecentWord, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	return m.recentWords, nil
}

func (m *mockProgressRepository) GetDetailsByLevel(ctx context.Context, userID int, level models.GEPTLevel) ([]models.WordProgressDetail, error) {
	if m.detailsErr != nil {
		return nil, m.detailsErr
	}
	return m.details, nil
}

// mockVocabularyRepository is a mock implementation of VocabularyRepository and VocabularyStore
type mockVocabularyRepository struct {
	items       []models.VocabularyItem
	getByIDsErr error
	newWords    []models.VocabularyItem
	newErr      error
	newLimit    int
	count       int
	countErr    error
	upserted    []models.VocabularyItem
	upsertErr   error
}

func (m *mockVocabularyRepository) GetByIDs(ctx context.Context, wordIDs []int) ([]models.VocabularyItem, error) {
	if m.getByIDsErr != nil {
		return nil, m.getByIDsErr
	}
	return m.items, nil
}

func (m *mockVocabularyRepository) GetNewByLevel(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.VocabularyItem, error) {
	m.newLimit = limit
	if m.newErr != nil {
		return nil, m.newErr
	}
	if len(m.newWords) > limit {
		return m.newWords[:limit], nil
	}
	return m.newWords, nil
}

func (m *mockVocabularyRepository) CountByLevel(ctx context.Context, level models.GEPTLevel) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockVocabularyRepository) Upsert(ctx context.Context, item *models.VocabularyItem) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, *item)
	return nil
}

// mockSessionRepository is a mock implementation of SessionRepository
type mockSessionRepository struct {
	session        *models.LearningSession
	getErr         error
	created        *models.LearningSession
	createErr      error
	finishUpdated  bool
	finishErr      error
	dailyStudyTime map[string]int
	dailyErr       error
	totalDays      int
	totalTime      int
	totalsErr      error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *models.LearningSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	session.ID = 42
	m.created = session
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID int) (*models.LearningSession, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.session, nil
}

func (m *mockSessionRepository) Finish(ctx context.Context, sessionID, userID int, result models.SessionResult) (bool, error) {
	if m.finishErr != nil {
		return false, m.finishErr
	}
	return m.finishUpdated, nil
}

func (m *mockSessionRepository) GetDailyStudyTime(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]int, error) {
	if m.dailyErr != nil {
		return nil, m.dailyErr
	}
	return m.dailyStudyTime, nil
}

func (m *mockSessionRepository) GetTotals(ctx context.Context, userID int, level models.GEPTLevel) (int, int, error) {
	if m.totalsErr != nil {
		return 0, 0, m.totalsErr
	}
	return m.totalDays, m.totalTime, nil
}

// mockReviewRepository is a mock implementation of ReviewRepository
type mockReviewRepository struct {
	dailyStats map[string]repositories.DailyReviewStat
	dailyErr   error
	accuracy   float64
	accErr     error
}

func (m *mockReviewRepository) GetDailyStats(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]repositories.DailyReviewStat, error) {
	if m.dailyErr != nil {
		return nil, m.dailyErr
	}
	return m.dailyStats, nil
}

func (m *mockReviewRepository) GetOverallAccuracy(ctx context.Context, userID int, level models.GEPTLevel) (float64, error) {
	if m.accErr != nil {
		return 0, m.accErr
	}
	return m.accuracy, nil
}

// mockWordSelector is a mock implementation of WordSelector
type mockWordSelector struct {
	words []models.WordCandidate
	err   error
}

func (m *mockWordSelector) SelectWords(ctx context.Context, userID int, level models.GEPTLevel, count int) ([]models.WordCandidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.words, nil
}
