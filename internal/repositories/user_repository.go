package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/educreate/srs-service/internal/models"
)

// userRepository implements UserRepository
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Exists checks whether a user row exists
func (r *userRepository) Exists(ctx context.Context, userID int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// GetUsersWithDueWords retrieves users that have at least one word due for
// review, together with the due-word count. Used by the reminder job.
func (r *userRepository) GetUsersWithDueWords(ctx context.Context) ([]models.DueWordsSummary, error) {
	query := `
		SELECT u.id, u.email, u.name, COUNT(p.id) as due_count
		FROM users u
		JOIN user_word_progress p ON p.user_id = u.id
		WHERE p.next_review_at <= NOW() AND p.review_count > 0
		GROUP BY u.id, u.email, u.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users with due words: %w", err)
	}
	defer rows.Close()

	var summaries []models.DueWordsSummary
	for rows.Next() {
		var s models.DueWordsSummary
		if err := rows.Scan(&s.UserID, &s.Email, &s.Name, &s.DueCount); err != nil {
			return nil, fmt.Errorf("failed to scan due words summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summaries, nil
}
