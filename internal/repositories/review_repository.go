package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/educreate/srs-service/internal/models"
)

// DailyReviewStat aggregates one day of answer events
type DailyReviewStat struct {
	Day           string
	TotalAnswers  int
	CorrectCount  int
	DistinctWords int
}

// reviewRepository implements ReviewRepository
type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// GetDailyStats aggregates per-day answer counts, correct counts and distinct
// words reviewed at the level over the last `days` days, keyed by YYYY-MM-DD
func (r *reviewRepository) GetDailyStats(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]DailyReviewStat, error) {
	query := `
		SELECT DATE_FORMAT(w.reviewed_at, '%Y-%m-%d') as day,
		       COUNT(*) as total_answers,
		       COALESCE(SUM(w.is_correct), 0) as correct_count,
		       COUNT(DISTINCT w.word_id) as distinct_words
		FROM word_reviews w
		JOIN vocabulary v ON v.id = w.word_id
		WHERE w.user_id = ? AND v.gept_level = ?
		  AND w.reviewed_at >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY day
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String(), days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily review stats: %w", err)
	}
	defer rows.Close()

	result := make(map[string]DailyReviewStat)
	for rows.Next() {
		var s DailyReviewStat
		if err := rows.Scan(&s.Day, &s.TotalAnswers, &s.CorrectCount, &s.DistinctWords); err != nil {
			return nil, fmt.Errorf("failed to scan daily review stat: %w", err)
		}
		result[s.Day] = s
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// GetOverallAccuracy returns the user's all-time answer accuracy (0-100) at
// the level. Users with no reviews get 0.
func (r *reviewRepository) GetOverallAccuracy(ctx context.Context, userID int, level models.GEPTLevel) (float64, error) {
	query := `
		SELECT COUNT(*) as total, COALESCE(SUM(w.is_correct), 0) as correct
		FROM word_reviews w
		JOIN vocabulary v ON v.id = w.word_id
		WHERE w.user_id = ? AND v.gept_level = ?
	`

	var total, correct int
	err := r.db.QueryRowContext(ctx, query, userID, level.String()).Scan(&total, &correct)
	if err != nil {
		return 0, fmt.Errorf("failed to query overall accuracy: %w", err)
	}

	if total == 0 {
		return 0, nil
	}

	return float64(correct) / float64(total) * 100, nil
}
