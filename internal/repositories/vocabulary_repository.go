package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/educreate/srs-service/internal/models"
)

// vocabularyRepository implements VocabularyRepository
type vocabularyRepository struct {
	db *sql.DB
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(db *sql.DB) *vocabularyRepository {
	return &vocabularyRepository{
		db: db,
	}
}

// GetByIDs retrieves vocabulary items by their IDs
func (r *vocabularyRepository) GetByIDs(ctx context.Context, wordIDs []int) ([]models.VocabularyItem, error) {
	if len(wordIDs) == 0 {
		return []models.VocabularyItem{}, nil
	}

	placeholders := make([]string, len(wordIDs))
	args := make([]any, len(wordIDs))
	for i, id := range wordIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, english, chinese, gept_level, part_of_speech, frequency, difficulty, image_url
		FROM vocabulary
		WHERE id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vocabulary: %w", err)
	}
	defer rows.Close()

	return scanVocabularyRows(rows)
}

// GetNewByLevel retrieves up to limit words at the given level that the user
// has no progress row for, most common words first
func (r *vocabularyRepository) GetNewByLevel(ctx context.Context, userID int, level models.GEPTLevel, limit int) ([]models.VocabularyItem, error) {
	query := `
		SELECT v.id, v.english, v.chinese, v.gept_level, v.part_of_speech, v.frequency, v.difficulty, v.image_url
		FROM vocabulary v
		WHERE v.gept_level = ?
		  AND NOT EXISTS (SELECT 1 FROM user_word_progress p WHERE p.word_id = v.id AND p.user_id = ?)
		ORDER BY v.frequency ASC, v.id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, level.String(), userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query new words: %w", err)
	}
	defer rows.Close()

	return scanVocabularyRows(rows)
}

// CountByLevel returns the number of vocabulary items at the given level
func (r *vocabularyRepository) CountByLevel(ctx context.Context, level models.GEPTLevel) (int, error) {
	query := `SELECT COUNT(*) as count FROM vocabulary WHERE gept_level = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, level.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vocabulary: %w", err)
	}

	return count, nil
}

// Upsert inserts a vocabulary item, updating the translation and metadata if a
// row with the same english word and level already exists. Used by the importer.
func (r *vocabularyRepository) Upsert(ctx context.Context, item *models.VocabularyItem) error {
	query := `
		INSERT INTO vocabulary (english, chinese, gept_level, part_of_speech, frequency, difficulty, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			chinese = VALUES(chinese),
			part_of_speech = VALUES(part_of_speech),
			frequency = VALUES(frequency),
			difficulty = VALUES(difficulty),
			image_url = VALUES(image_url)
	`

	var imageURL any
	if item.ImageURL != "" {
		imageURL = item.ImageURL
	}

	_, err := r.db.ExecContext(ctx, query,
		item.English,
		item.Chinese,
		item.GeptLevel.String(),
		item.PartOfSpeech,
		item.Frequency,
		item.Difficulty,
		imageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert vocabulary item: %w", err)
	}

	return nil
}

// scanVocabularyRows scans vocabulary rows into models
func scanVocabularyRows(rows *sql.Rows) ([]models.VocabularyItem, error) {
	var items []models.VocabularyItem
	for rows.Next() {
		var item models.VocabularyItem
		var level string
		var imageURL sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.English,
			&item.Chinese,
			&level,
			&item.PartOfSpeech,
			&item.Frequency,
			&item.Difficulty,
			&imageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vocabulary item: %w", err)
		}
		item.GeptLevel = models.GEPTLevel(level)
		if imageURL.Valid {
			item.ImageURL = imageURL.String
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
