package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/educreate/srs-service/internal/config"
	"github.com/educreate/srs-service/internal/logger"
	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/repositories"
	_ "github.com/go-sql-driver/mysql"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Expected sheet layout: A=english, B=chinese, C=part of speech,
// D=frequency rank, E=difficulty, F=image URL (optional). First row is a header.
func main() {
	filePath := flag.String("file", "", "path to the vocabulary .xlsx file")
	levelStr := flag.String("level", "", "GEPT level for all words in the file: ELEMENTARY, INTERMEDIATE, or HIGH_INTERMEDIATE")
	sheetName := flag.String("sheet", "Sheet1", "sheet name to import")
	flag.Parse()

	if *filePath == "" || *levelStr == "" {
		flag.Usage()
		os.Exit(2)
	}

	level, err := models.ParseGEPTLevel(*levelStr)
	if err != nil {
		log.Fatalf("Invalid level: %v\n", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting vocabulary import",
		zap.String("file", *filePath),
		zap.String("level", level.String()),
	)

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	vocabRepo := repositories.NewVocabularyRepository(db)

	imported, skipped, err := importFile(context.Background(), vocabRepo, *filePath, *sheetName, level)
	if err != nil {
		logger.Logger.Fatal("Import failed", zap.Error(err))
	}

	logger.Logger.Info("Import finished", zap.Int("imported", imported), zap.Int("skipped", skipped))
}

// VocabularyRepository defines the interface for vocabulary writes
type VocabularyRepository interface {
	// Upsert inserts a vocabulary item or updates the existing row with the
	// same english word and GEPT level.
	//
	// If some error occurs during data insert or update, the error will be returned.
	Upsert(ctx context.Context, item *models.VocabularyItem) error
}

// importFile reads the sheet and upserts one vocabulary row per line
func importFile(ctx context.Context, repo VocabularyRepository, path, sheet string, level models.GEPTLevel) (int, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rows: %w", err)
	}

	imported, skipped := 0, 0
	for i, row := range rows {
		// Skip header row
		if i == 0 {
			continue
		}

		item, err := parseRow(row, level)
		if err != nil {
			logger.Logger.Warn("Skipping row", zap.Int("row", i+1), zap.Error(err))
			skipped++
			continue
		}

		if err := repo.Upsert(ctx, item); err != nil {
			return imported, skipped, fmt.Errorf("failed to upsert row %d: %w", i+1, err)
		}
		imported++
	}

	return imported, skipped, nil
}

// parseRow converts one sheet row into a vocabulary item
func parseRow(row []string, level models.GEPTLevel) (*models.VocabularyItem, error) {
	english := strings.TrimSpace(cell(row, 0))
	chinese := strings.TrimSpace(cell(row, 1))
	if english == "" {
		return nil, fmt.Errorf("english word cannot be empty")
	}
	if chinese == "" {
		return nil, fmt.Errorf("chinese translation cannot be empty")
	}

	frequency, err := parseIntCell(cell(row, 3), 0)
	if err != nil {
		return nil, fmt.Errorf("invalid frequency: %w", err)
	}
	difficulty, err := parseIntCell(cell(row, 4), 3)
	if err != nil {
		return nil, fmt.Errorf("invalid difficulty: %w", err)
	}

	return &models.VocabularyItem{
		English:      english,
		Chinese:      chinese,
		GeptLevel:    level,
		PartOfSpeech: strings.TrimSpace(cell(row, 2)),
		Frequency:    frequency,
		Difficulty:   difficulty,
		ImageURL:     strings.TrimSpace(cell(row, 5)),
	}, nil
}

// cell returns the column value or empty string when the row is short
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// parseIntCell parses a numeric cell, falling back to a default when empty
func parseIntCell(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
