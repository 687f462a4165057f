package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/educreate/srs-service/internal/models"
)

// sessionRepository implements SessionRepository
type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create inserts a new learning session and sets its ID
func (r *sessionRepository) Create(ctx context.Context, session *models.LearningSession) error {
	query := `
		INSERT INTO learning_sessions (user_id, gept_level, new_words_count, review_words_count, total_words, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		session.UserID,
		session.GeptLevel.String(),
		session.NewWordsCount,
		session.ReviewWordsCount,
		session.TotalWords,
		session.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	session.ID = int(id)
	return nil
}

// GetByID retrieves a session by ID. Returns ErrNotFound if it does not exist.
func (r *sessionRepository) GetByID(ctx context.Context, sessionID int) (*models.LearningSession, error) {
	query := `
		SELECT id, user_id, gept_level, new_words_count, review_words_count, total_words,
		       correct_answers, total_answers, duration_seconds, started_at, finished_at
		FROM learning_sessions
		WHERE id = ?
		LIMIT 1
	`

	s := &models.LearningSession{}
	var level string
	var correctAnswers, totalAnswers, duration sql.NullInt64
	var finishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&s.ID,
		&s.UserID,
		&level,
		&s.NewWordsCount,
		&s.ReviewWordsCount,
		&s.TotalWords,
		&correctAnswers,
		&totalAnswers,
		&duration,
		&s.StartedAt,
		&finishedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.GeptLevel = models.GEPTLevel(level)
	if correctAnswers.Valid {
		v := int(correctAnswers.Int64)
		s.CorrectAnswers = &v
	}
	if totalAnswers.Valid {
		v := int(totalAnswers.Int64)
		s.TotalAnswers = &v
	}
	if duration.Valid {
		v := int(duration.Int64)
		s.DurationSeconds = &v
	}
	if finishedAt.Valid {
		s.FinishedAt = &finishedAt.Time
	}

	return s, nil
}

// Finish writes the aggregate result fields exactly once. The WHERE clause
// guards the immutability invariant: a finished session never matches again.
// Returns false when no row was updated (unknown session or already finished).
func (r *sessionRepository) Finish(ctx context.Context, sessionID, userID int, result models.SessionResult) (bool, error) {
	query := `
		UPDATE learning_sessions
		SET correct_answers = ?, total_answers = ?, duration_seconds = ?, finished_at = NOW()
		WHERE id = ? AND user_id = ? AND finished_at IS NULL
	`

	res, err := r.db.ExecContext(ctx, query,
		result.CorrectAnswers,
		result.TotalAnswers,
		result.DurationSeconds,
		sessionID,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to finish session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

// GetDailyStudyTime aggregates per-day study time (seconds) from finished
// sessions at the level over the last `days` days, keyed by YYYY-MM-DD
func (r *sessionRepository) GetDailyStudyTime(ctx context.Context, userID int, level models.GEPTLevel, days int) (map[string]int, error) {
	query := `
		SELECT DATE_FORMAT(started_at, '%Y-%m-%d') as day, COALESCE(SUM(duration_seconds), 0) as study_time
		FROM learning_sessions
		WHERE user_id = ? AND gept_level = ? AND finished_at IS NOT NULL
		  AND started_at >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY day
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String(), days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily study time: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var day string
		var studyTime int
		if err := rows.Scan(&day, &studyTime); err != nil {
			return nil, fmt.Errorf("failed to scan daily study time: %w", err)
		}
		result[day] = studyTime
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// GetTotals returns the user's all-time study-day count and total study time
// (seconds) at the level, from finished sessions
func (r *sessionRepository) GetTotals(ctx context.Context, userID int, level models.GEPTLevel) (int, int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(started_at)) as total_days, COALESCE(SUM(duration_seconds), 0) as total_time
		FROM learning_sessions
		WHERE user_id = ? AND gept_level = ? AND finished_at IS NOT NULL
	`

	var totalDays, totalTime int
	err := r.db.QueryRowContext(ctx, query, userID, level.String()).Scan(&totalDays, &totalTime)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query session totals: %w", err)
	}

	return totalDays, totalTime, nil
}
