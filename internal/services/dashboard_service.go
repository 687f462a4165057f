package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/repositories"
	"github.com/educreate/srs-service/internal/srs"
	"go.uber.org/zap"
)

const (
	// dashboardDays is the window of the daily activity chart
	dashboardDays = 14
	// recentWordsLimit caps the recent-words list on the dashboard
	recentWordsLimit = 10
	// curveProjectionDays is the horizon of the retention projection chart
	curveProjectionDays = 14
)

// ReviewRepository is the interface that wraps methods for WordReview table data access
type ReviewRepository interface {
	// GetDailyStats aggregates per-day answer counts over the last `days` days,
	// keyed by YYYY-MM-DD.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetDailyStats(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]repositories.DailyReviewStat, error)
	// GetOverallAccuracy returns the user's all-time answer accuracy (0-100) at the level.
	GetOverallAccuracy(ctx context.Context, userID int, level models.GEPTLevel) (float64, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	userRepo     UserRepository
	progressRepo ProgressRepository
	sessionRepo  SessionRepository
	reviewRepo   ReviewRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewDashboardService creates a new read-side aggregation service
func NewDashboardService(
	userRepo UserRepository,
	progressRepo ProgressRepository,
	sessionRepo SessionRepository,
	reviewRepo ReviewRepository,
	logger *zap.Logger,
) *dashboardService {
	return &dashboardService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetDashboard assembles the learning dashboard payload: status totals,
// all-time accuracy and study time, a day-by-day activity series for the last
// two weeks, the memory-strength histogram and the most recently reviewed
// words. Days without activity appear in the series with zero values.
func (s *dashboardService) GetDashboard(ctx context.Context, userID int, level models.GEPTLevel) (*models.DashboardData, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check user existence", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	statusCounts, err := s.progressRepo.CountByStatus(ctx, userID, level)
	if err != nil {
		s.logger.Error("failed to count words by status", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to count words by status: %w", err)
	}

	accuracy, err := s.reviewRepo.GetOverallAccuracy(ctx, userID, level)
	if err != nil {
		s.logger.Error("failed to get overall accuracy", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get overall accuracy: %w", err)
	}

	totalDays, totalTime, err := s.sessionRepo.GetTotals(ctx, userID, level)
	if err != nil {
		s.logger.Error("failed to get session totals", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get session totals: %w", err)
	}

	dailyStats, err := s.buildDailyStats(ctx, userID, level)
	if err != nil {
		return nil, err
	}

	histogram, err := s.progressRepo.StrengthHistogram(ctx, userID, level)
	if err != nil {
		s.logger.Error("failed to get strength histogram", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get strength histogram: %w", err)
	}

	recentWords, err := s.progressRepo.GetRecentWords(ctx, userID, level, recentWordsLimit)
	if err != nil {
		s.logger.Error("failed to get recent words", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get recent words: %w", err)
	}
	if recentWords == nil {
		recentWords = []models.RecentWord{}
	}

	mastered := statusCounts[models.StatusMastered]
	learning := statusCounts[models.StatusLearning]
	newWords := statusCounts[models.StatusNew]

	return &models.DashboardData{
		TotalDays:                  totalDays,
		TotalTime:                  totalTime,
		TotalWords:                 mastered + learning + newWords,
		MasteredWords:              mastered,
		LearningWords:              learning,
		NewWords:                   newWords,
		AverageAccuracy:            accuracy,
		DailyStats:                 dailyStats,
		MemoryStrengthDistribution: histogram,
		RecentWords:                recentWords,
	}, nil
}

// buildDailyStats merges per-day study time and per-day review aggregates into
// a dense series covering the last dashboardDays days, oldest first
func (s *dashboardService) buildDailyStats(ctx context.Context, userID int, level models.GEPTLevel) ([]models.DailyStat, error) {
	studyTime, err := s.sessionRepo.GetDailyStudyTime(ctx, userID, level, dashboardDays)
	if err != nil {
		s.logger.Error("failed to get daily study time", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get daily study time: %w", err)
	}

	reviewStats, err := s.reviewRepo.GetDailyStats(ctx, userID, level, dashboardDays)
	if err != nil {
		s.logger.Error("failed to get daily review stats", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get daily review stats: %w", err)
	}

	today := s.now()
	stats := make([]models.DailyStat, 0, dashboardDays)
	for i := dashboardDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		stat := models.DailyStat{Date: day, StudyTime: studyTime[day]}
		if rs, ok := reviewStats[day]; ok {
			stat.WordsLearned = rs.DistinctWords
			if rs.TotalAnswers > 0 {
				stat.Accuracy = float64(rs.CorrectCount) / float64(rs.TotalAnswers) * 100
			}
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// GetForgettingCurve classifies the user's words by memory strength and builds
// a chart-ready projection of average retention per group over the next two
// weeks. Forgetting words are reviewed words that sit past their due date
// without having reached mastery.
func (s *dashboardService) GetForgettingCurve(ctx context.Context, userID int, level models.GEPTLevel) (*models.ForgettingCurveData, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check user existence", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	details, err := s.progressRepo.GetDetailsByLevel(ctx, userID, level)
	if err != nil {
		s.logger.Error("failed to get word details", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get word details: %w", err)
	}

	now := s.now()
	data := &models.ForgettingCurveData{
		Words:           details,
		ForgettingWords: []models.WordProgressDetail{},
		MasteredWords:   []models.WordProgressDetail{},
		LearningWords:   []models.WordProgressDetail{},
		NewWords:        []models.WordProgressDetail{},
	}
	if data.Words == nil {
		data.Words = []models.WordProgressDetail{}
	}

	for _, d := range details {
		switch {
		case d.MemoryStrength >= srs.MasteryThreshold:
			data.MasteredWords = append(data.MasteredWords, d)
		case d.MemoryStrength >= 20:
			data.LearningWords = append(data.LearningWords, d)
		default:
			data.NewWords = append(data.NewWords, d)
		}
		if d.ReviewCount > 0 && d.MemoryStrength < srs.MasteryThreshold && d.NextReviewAt.Before(now) {
			data.ForgettingWords = append(data.ForgettingWords, d)
		}
	}

	data.ChartData = buildRetentionChart(now, data.MasteredWords, data.LearningWords, data.NewWords)

	return data, nil
}

// buildRetentionChart projects each group's average strength forward with an
// exponential forgetting curve. A group's stability grows with its average
// review interval, so mastered words decay visibly slower than new ones.
func buildRetentionChart(now time.Time, mastered, learning, newWords []models.WordProgressDetail) models.ChartData {
	labels := make([]string, 0, curveProjectionDays+1)
	for i := 0; i <= curveProjectionDays; i++ {
		labels = append(labels, now.AddDate(0, 0, i).Format("2006-01-02"))
	}

	return models.ChartData{
		Labels: labels,
		Datasets: []models.ChartDataset{
			{
				Label:           "Mastered",
				Data:            projectRetention(mastered),
				BorderColor:     "rgb(34, 197, 94)",
				BackgroundColor: "rgba(34, 197, 94, 0.1)",
				Fill:            true,
			},
			{
				Label:           "Learning",
				Data:            projectRetention(learning),
				BorderColor:     "rgb(234, 179, 8)",
				BackgroundColor: "rgba(234, 179, 8, 0.1)",
				Fill:            true,
			},
			{
				Label:           "New",
				Data:            projectRetention(newWords),
				BorderColor:     "rgb(239, 68, 68)",
				BackgroundColor: "rgba(239, 68, 68, 0.1)",
				Fill:            true,
			},
		},
	}
}

// projectRetention evaluates retention(t) = strength * e^(-t/stability) for
// t in [0, curveProjectionDays], where strength and stability come from the
// group's averages. Empty groups project a flat zero line.
func projectRetention(group []models.WordProgressDetail) []float64 {
	data := make([]float64, curveProjectionDays+1)
	if len(group) == 0 {
		return data
	}

	var strengthSum, reviewSum int
	for _, d := range group {
		strengthSum += d.MemoryStrength
		reviewSum += d.ReviewCount
	}
	avgStrength := float64(strengthSum) / float64(len(group))
	// Each successful review roughly doubles how long the memory holds
	stability := 2.0 + float64(reviewSum)/float64(len(group))*2.0

	for t := 0; t <= curveProjectionDays; t++ {
		retention := avgStrength * math.Exp(-float64(t)/stability)
		data[t] = math.Round(retention*10) / 10
	}

	return data
}
