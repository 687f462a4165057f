package main

import (
	"context"
	"fmt"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/srs"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// Task type names shared with the scheduler
const (
	decayTaskType    = "srs:decay"
	reminderTaskType = "srs:reminder"
)

// ProgressRepository defines the interface for word progress maintenance
type ProgressRepository interface {
	// DecayOverdue reduces the memory strength of words whose review date has
	// passed and regresses mastered words that fell below the threshold.
	//
	// "decayPerDay" parameter is how many strength points a word loses per overdue day.
	// "maxDecay" parameter caps the total strength loss in one run.
	// "masteryThreshold" parameter is the strength below which a mastered word regresses.
	//
	// Returns the number of progress rows touched.
	// If some error occurs during data update, the error will be returned.
	DecayOverdue(ctx context.Context, decayPerDay, maxDecay, masteryThreshold int) (int64, error)
}

// UserRepository defines the interface for reminder recipients
type UserRepository interface {
	// GetUsersWithDueWords retrieves every user with at least one word due for
	// review, together with the size of their backlog.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetUsersWithDueWords(ctx context.Context) ([]models.DueWordsSummary, error)
}

// Worker handles daily job processing
type Worker struct {
	logger       *zap.Logger
	progressRepo ProgressRepository
	userRepo     UserRepository
	decayPerDay  int
	maxDecay     int
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	smtpFrom     string
}

// NewWorker creates a new worker instance
func NewWorker(
	logger *zap.Logger,
	progressRepo ProgressRepository,
	userRepo UserRepository,
	decayPerDay, maxDecay int,
	smtpHost string,
	smtpPort int,
	smtpUsername, smtpPassword, smtpFrom string,
) *Worker {
	return &Worker{
		logger:       logger,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		decayPerDay:  decayPerDay,
		maxDecay:     maxDecay,
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUsername: smtpUsername,
		smtpPassword: smtpPassword,
		smtpFrom:     smtpFrom,
	}
}

// HandleDecay handles the nightly memory strength decay job
func (w *Worker) HandleDecay(ctx context.Context, t *asynq.Task) error {
	affected, err := w.progressRepo.DecayOverdue(ctx, w.decayPerDay, w.maxDecay, srs.MasteryThreshold)
	if err != nil {
		return fmt.Errorf("failed to decay overdue words: %w", err)
	}

	w.logger.Info("Decay job completed", zap.Int64("rows_affected", affected))
	return nil
}

// HandleReminder handles the daily due-words reminder job
func (w *Worker) HandleReminder(ctx context.Context, t *asynq.Task) error {
	summaries, err := w.userRepo.GetUsersWithDueWords(ctx)
	if err != nil {
		return fmt.Errorf("failed to get users with due words: %w", err)
	}

	sent := 0
	for _, summary := range summaries {
		subject := fmt.Sprintf("You have %d words waiting for review", summary.DueCount)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>You have <b>%d</b> words due for review today. A short session now will keep them fresh.</p>",
			summary.Name, summary.DueCount,
		)

		if err := w.sendEmail(summary.Email, subject, body); err != nil {
			w.logger.Error("Failed to send reminder",
				zap.Int("user_id", summary.UserID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	w.logger.Info("Reminder job completed", zap.Int("sent", sent), zap.Int("total", len(summaries)))
	return nil
}

// sendEmail sends an email using gopkg.in/mail.v2
func (w *Worker) sendEmail(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", w.smtpFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := mail.NewDialer(w.smtpHost, w.smtpPort, w.smtpUsername, w.smtpPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
