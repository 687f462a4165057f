package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/educreate/srs-service/internal/models"
	"github.com/go-sql-driver/mysql"
)

// progressRepository implements ProgressRepository
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// GetByUserAndWord retrieves the progress row for a (user, word) pair.
// Returns ErrNotFound if the user has never seen the word.
func (r *progressRepository) GetByUserAndWord(ctx context.Context, userID, wordID int) (*models.UserWordProgress, error) {
	query := `
		SELECT id, user_id, word_id, memory_strength, status, interval_days, ease_factor,
		       review_count, correct_count, incorrect_count, next_review_at, last_reviewed_at, first_learned_at
		FROM user_word_progress
		WHERE user_id = ? AND word_id = ?
		LIMIT 1
	`

	p := &models.UserWordProgress{}
	var status string
	var lastReviewedAt, firstLearnedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID, wordID).Scan(
		&p.ID,
		&p.UserID,
		&p.WordID,
		&p.MemoryStrength,
		&status,
		&p.IntervalDays,
		&p.EaseFactor,
		&p.ReviewCount,
		&p.CorrectCount,
		&p.IncorrectCount,
		&p.NextReviewAt,
		&lastReviewedAt,
		&firstLearnedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	p.Status = models.ProgressStatus(status)
	if lastReviewedAt.Valid {
		p.LastReviewedAt = &lastReviewedAt.Time
	}
	if firstLearnedAt.Valid {
		p.FirstLearnedAt = &firstLearnedAt.Time
	}

	return p, nil
}

// GetByUserAndWordIDs retrieves progress rows for a user restricted to the
// given word IDs. Words without a row are simply absent from the result.
func (r *progressRepository) GetByUserAndWordIDs(ctx context.Context, userID int, wordIDs []int) ([]models.UserWordProgress, error) {
	if len(wordIDs) == 0 {
		return []models.UserWordProgress{}, nil
	}

	placeholders := make([]string, len(wordIDs))
	args := make([]any, 0, len(wordIDs)+1)
	args = append(args, userID)
	for i, id := range wordIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, word_id, memory_strength, status, interval_days, ease_factor,
		       review_count, correct_count, incorrect_count, next_review_at, last_reviewed_at, first_learned_at
		FROM user_word_progress
		WHERE user_id = ? AND word_id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress rows: %w", err)
	}
	defer rows.Close()

	var result []models.UserWordProgress
	for rows.Next() {
		var p models.UserWordProgress
		var status string
		var lastReviewedAt, firstLearnedAt sql.NullTime
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.WordID,
			&p.MemoryStrength,
			&status,
			&p.IntervalDays,
			&p.EaseFactor,
			&p.ReviewCount,
			&p.CorrectCount,
			&p.IncorrectCount,
			&p.NextReviewAt,
			&lastReviewedAt,
			&firstLearnedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		p.Status = models.ProgressStatus(status)
		if lastReviewedAt.Valid {
			p.LastReviewedAt = &lastReviewedAt.Time
		}
		if firstLearnedAt.Valid {
			p.FirstLearnedAt = &firstLearnedAt.Time
		}
		result = append(result, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// GetDueWithWords retrieves words due for review at the given level, joined
// with their vocabulary data, most recently reviewed first
func (r *progressRepository) GetDueWithWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.WordCandidate, error) {
	query := `
		SELECT v.id, v.english, v.chinese, v.gept_level, v.part_of_speech, v.frequency, v.difficulty, v.image_url,
		       p.memory_strength, p.next_review_at
		FROM user_word_progress p
		JOIN vocabulary v ON v.id = p.word_id
		WHERE p.user_id = ? AND v.gept_level = ? AND p.next_review_at <= NOW()
		ORDER BY p.last_reviewed_at DESC, p.id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due words: %w", err)
	}
	defer rows.Close()

	var candidates []models.WordCandidate
	for rows.Next() {
		var c models.WordCandidate
		var levelStr string
		var imageURL sql.NullString
		err := rows.Scan(
			&c.ID,
			&c.English,
			&c.Chinese,
			&levelStr,
			&c.PartOfSpeech,
			&c.Frequency,
			&c.Difficulty,
			&imageURL,
			&c.MemoryStrength,
			&c.NextReviewAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due word: %w", err)
		}
		c.GeptLevel = models.GEPTLevel(levelStr)
		if imageURL.Valid {
			c.ImageURL = imageURL.String
		}
		c.NeedsReview = true
		candidates = append(candidates, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return candidates, nil
}

// ApplyAnswer persists one graded answer: the review-log insert and the
// progress upsert run in a single transaction so a crash cannot separate them.
// Returns ErrDuplicateReview when the (session, word) pair was already graded;
// in that case nothing is written.
func (r *progressRepository) ApplyAnswer(ctx context.Context, p *models.UserWordProgress, review *models.WordReview) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reviewQuery := `
		INSERT INTO word_reviews (session_id, user_id, word_id, is_correct, response_time_ms, quality, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, reviewQuery,
		review.SessionID,
		review.UserID,
		review.WordID,
		review.IsCorrect,
		review.ResponseTimeMs,
		review.Quality,
		review.ReviewedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to insert word review: %w", err)
	}

	progressQuery := `
		INSERT INTO user_word_progress
			(user_id, word_id, memory_strength, status, interval_days, ease_factor,
			 review_count, correct_count, incorrect_count, next_review_at, last_reviewed_at, first_learned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			memory_strength = VALUES(memory_strength),
			status = VALUES(status),
			interval_days = VALUES(interval_days),
			ease_factor = VALUES(ease_factor),
			review_count = VALUES(review_count),
			correct_count = VALUES(correct_count),
			incorrect_count = VALUES(incorrect_count),
			next_review_at = VALUES(next_review_at),
			last_reviewed_at = VALUES(last_reviewed_at),
			first_learned_at = VALUES(first_learned_at)
	`

	var lastReviewedAt, firstLearnedAt any
	if p.LastReviewedAt != nil {
		lastReviewedAt = *p.LastReviewedAt
	}
	if p.FirstLearnedAt != nil {
		firstLearnedAt = *p.FirstLearnedAt
	}

	_, err = tx.ExecContext(ctx, progressQuery,
		p.UserID,
		p.WordID,
		p.MemoryStrength,
		string(p.Status),
		p.IntervalDays,
		p.EaseFactor,
		p.ReviewCount,
		p.CorrectCount,
		p.IncorrectCount,
		p.NextReviewAt,
		lastReviewedAt,
		firstLearnedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountByStatus returns the number of the user's progress rows at the level,
// broken down by status
func (r *progressRepository) CountByStatus(ctx context.Context, userID int, level models.GEPTLevel) (map[models.ProgressStatus]int, error) {
	query := `
		SELECT p.status, COUNT(*) as count
		FROM user_word_progress p
		JOIN vocabulary v ON v.id = p.word_id
		WHERE p.user_id = ? AND v.gept_level = ?
		GROUP BY p.status
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ProgressStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[models.ProgressStatus(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// StrengthHistogram returns the user's memory strength distribution at the
// level, in five 20-point buckets
func (r *progressRepository) StrengthHistogram(ctx context.Context, userID int, level models.GEPTLevel) ([]models.StrengthBucket, error) {
	query := `
		SELECT LEAST(FLOOR(p.memory_strength / 20), 4) as bucket, COUNT(*) as count
		FROM user_word_progress p
		JOIN vocabulary v ON v.id = p.word_id
		WHERE p.user_id = ? AND v.gept_level = ?
		GROUP BY bucket
		ORDER BY bucket
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query strength histogram: %w", err)
	}
	defer rows.Close()

	labels := []string{"0-20", "21-40", "41-60", "61-80", "81-100"}
	buckets := make([]models.StrengthBucket, len(labels))
	for i, label := range labels {
		buckets[i] = models.StrengthBucket{Range: label}
	}

	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("failed to scan histogram bucket: %w", err)
		}
		if bucket >= 0 && bucket < len(buckets) {
			buckets[bucket].Count = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return buckets, nil
}

// GetRecentWords retrieves the user's most recently reviewed words at the level
func (r *progressRepository) GetRecentWords(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.RecentWord, error) {
	query := `
		SELECT v.english, v.chinese, p.memory_strength, p.last_reviewed_at, p.next_review_at
		FROM user_word_progress p
		JOIN vocabulary v ON v.id = p.word_id
		WHERE p.user_id = ? AND v.gept_level = ? AND p.last_reviewed_at IS NOT NULL
		ORDER BY p.last_reviewed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent words: %w", err)
	}
	defer rows.Close()

	var words []models.RecentWord
	for rows.Next() {
		var w models.RecentWord
		var lastReviewed sql.NullTime
		if err := rows.Scan(&w.English, &w.Chinese, &w.MemoryStrength, &lastReviewed, &w.NextReview); err != nil {
			return nil, fmt.Errorf("failed to scan recent word: %w", err)
		}
		if lastReviewed.Valid {
			w.LastReviewed = &lastReviewed.Time
		}
		words = append(words, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

// GetDetailsByLevel retrieves all of the user's per-word progress details at
// the level, for the forgetting-curve view
func (r *progressRepository) GetDetailsByLevel(ctx context.Context, userID int, level models.GEPTLevel) ([]models.WordProgressDetail, error) {
	query := `
		SELECT p.id, v.english, v.chinese, p.memory_strength, p.status,
		       p.next_review_at, p.last_reviewed_at, p.review_count, p.correct_count, p.incorrect_count
		FROM user_word_progress p
		JOIN vocabulary v ON v.id = p.word_id
		WHERE p.user_id = ? AND v.gept_level = ?
		ORDER BY p.memory_strength ASC, p.next_review_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, level.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query progress details: %w", err)
	}
	defer rows.Close()

	var details []models.WordProgressDetail
	for rows.Next() {
		var d models.WordProgressDetail
		var lastReviewedAt sql.NullTime
		err := rows.Scan(
			&d.ID,
			&d.English,
			&d.Chinese,
			&d.MemoryStrength,
			&d.Status,
			&d.NextReviewAt,
			&lastReviewedAt,
			&d.ReviewCount,
			&d.CorrectCount,
			&d.IncorrectCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress detail: %w", err)
		}
		if lastReviewedAt.Valid {
			d.LastReviewedAt = &lastReviewedAt.Time
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return details, nil
}

// DecayOverdue lowers memory strength for rows whose review date has passed,
// proportionally to how many days overdue they are, and regresses mastered
// rows that fell below the mastery threshold. Used by the nightly decay job.
func (r *progressRepository) DecayOverdue(ctx context.Context, decayPerDay, maxDecay, masteryThreshold int) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	decayQuery := `
		UPDATE user_word_progress
		SET memory_strength = GREATEST(0, memory_strength - LEAST(?, DATEDIFF(NOW(), next_review_at) * ?))
		WHERE next_review_at < NOW() - INTERVAL 1 DAY AND review_count > 0 AND memory_strength > 0
	`

	result, err := tx.ExecContext(ctx, decayQuery, maxDecay, decayPerDay)
	if err != nil {
		return 0, fmt.Errorf("failed to decay overdue progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	regressQuery := `
		UPDATE user_word_progress
		SET status = 'LEARNING'
		WHERE status = 'MASTERED' AND memory_strength < ?
	`

	if _, err := tx.ExecContext(ctx, regressQuery, masteryThreshold); err != nil {
		return 0, fmt.Errorf("failed to regress mastered words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return affected, nil
}
