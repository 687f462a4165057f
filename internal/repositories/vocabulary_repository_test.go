package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/educreate/srs-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupVocabularyTestRepository creates a vocabulary repository with a mock database
func setupVocabularyTestRepository(t *testing.T) (*vocabularyRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewVocabularyRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewVocabularyRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewVocabularyRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

var vocabularyColumns = []string{
	"id", "english", "chinese", "gept_level", "part_of_speech", "frequency", "difficulty", "image_url",
}

func TestVocabularyRepository_GetByIDs(t *testing.T) {
	tests := []struct {
		name          string
		wordIDs       []int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:    "success with multiple IDs",
			wordIDs: []int{1, 2, 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns).
					AddRow(1, "apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil).
					AddRow(2, "banana", "香蕉", "ELEMENTARY", "noun", 340, 1, "https://img/banana.png").
					AddRow(3, "cherry", "櫻桃", "ELEMENTARY", "noun", 900, 2, nil)
				mock.ExpectQuery(`FROM vocabulary\s+WHERE id IN \(\?,\?,\?\)`).
					WithArgs(1, 2, 3).
					WillReturnRows(rows)
			},
			expectedCount: 3,
		},
		{
			name:          "empty wordIDs slice",
			wordIDs:       []int{},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedCount: 0,
		},
		{
			name:    "database query error",
			wordIDs: []int{1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM vocabulary\s+WHERE id IN \(\?\)`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name:    "scan error",
			wordIDs: []int{1},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns).
					AddRow("invalid", "apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil)
				mock.ExpectQuery(`FROM vocabulary\s+WHERE id IN \(\?\)`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name:    "rows iteration error",
			wordIDs: []int{1},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns).
					AddRow(1, "apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`FROM vocabulary\s+WHERE id IN \(\?\)`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVocabularyTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByIDs(context.Background(), tt.wordIDs)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabularyRepository_GetNewByLevel(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns).
					AddRow(1, "apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil).
					AddRow(2, "banana", "香蕉", "ELEMENTARY", "noun", 340, 1, nil)
				mock.ExpectQuery(`WHERE v.gept_level = \?\s+AND NOT EXISTS`).
					WithArgs("ELEMENTARY", 1, 10).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "level exhausted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE v.gept_level = \?\s+AND NOT EXISTS`).
					WithArgs("ELEMENTARY", 1, 10).
					WillReturnRows(sqlmock.NewRows(vocabularyColumns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE v.gept_level = \?\s+AND NOT EXISTS`).
					WithArgs("ELEMENTARY", 1, 10).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVocabularyTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetNewByLevel(context.Background(), 1, models.GEPTElementary, 10)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabularyRepository_CountByLevel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupVocabularyTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) as count FROM vocabulary WHERE gept_level = \?`).
			WithArgs("INTERMEDIATE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2048))

		count, err := repo.CountByLevel(context.Background(), models.GEPTIntermediate)

		assert.NoError(t, err)
		assert.Equal(t, 2048, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupVocabularyTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) as count FROM vocabulary WHERE gept_level = \?`).
			WithArgs("INTERMEDIATE").
			WillReturnError(errors.New("database error"))

		count, err := repo.CountByLevel(context.Background(), models.GEPTIntermediate)

		assert.Error(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVocabularyRepository_Upsert(t *testing.T) {
	item := &models.VocabularyItem{
		English:      "apple",
		Chinese:      "蘋果",
		GeptLevel:    models.GEPTElementary,
		PartOfSpeech: "noun",
		Frequency:    120,
		Difficulty:   1,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupVocabularyTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO vocabulary`).
			WithArgs("apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Upsert(context.Background(), item)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupVocabularyTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO vocabulary`).
			WithArgs("apple", "蘋果", "ELEMENTARY", "noun", 120, 1, nil).
			WillReturnError(errors.New("database error"))

		err := repo.Upsert(context.Background(), item)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
