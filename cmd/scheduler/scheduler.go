package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	decayTaskType    = "srs:decay"
	reminderTaskType = "srs:reminder"
	lastRunKeyPrefix = "srs:last_run:"
)

// Scheduler enqueues the daily decay and reminder jobs. The last-run date for
// each job is kept in Redis so a restart does not enqueue the same job twice
// in one day.
type Scheduler struct {
	redis        *redis.Client
	asynqClient  *asynq.Client
	logger       *zap.Logger
	ticker       *time.Ticker
	stopChan     chan struct{}
	decayHour    int
	reminderHour int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(redis *redis.Client, asynqClient *asynq.Client, logger *zap.Logger, decayHour, reminderHour int) *Scheduler {
	return &Scheduler{
		redis:        redis,
		asynqClient:  asynqClient,
		logger:       logger,
		ticker:       time.NewTicker(1 * time.Minute),
		stopChan:     make(chan struct{}),
		decayHour:    decayHour,
		reminderHour: reminderHour,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler started")
	go s.run()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.ticker.Stop()
	close(s.stopChan)
	s.logger.Info("Scheduler stopped")
}

// run executes the scheduler loop
func (s *Scheduler) run() {
	ctx := context.Background()

	// Run immediately on start
	s.executeJobs(ctx)

	for {
		select {
		case <-s.ticker.C:
			s.executeJobs(ctx)
		case <-s.stopChan:
			return
		}
	}
}

// executeJobs enqueues every daily job whose hour has passed
func (s *Scheduler) executeJobs(ctx context.Context) {
	s.maybeEnqueue(ctx, decayTaskType, s.decayHour)
	s.maybeEnqueue(ctx, reminderTaskType, s.reminderHour)
}

// maybeEnqueue enqueues the job once per day after the configured hour
func (s *Scheduler) maybeEnqueue(ctx context.Context, taskType string, hour int) {
	now := time.Now()
	if now.Hour() < hour {
		return // Too early for this job today
	}

	today := now.Format("2006-01-02")
	key := lastRunKeyPrefix + taskType

	lastRun, err := s.redis.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		s.logger.Error("Failed to read last run marker", zap.String("task", taskType), zap.Error(err))
		return
	}
	if lastRun == today {
		return // Already enqueued today
	}

	task := asynq.NewTask(taskType, nil)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue("default")); err != nil {
		s.logger.Error("Failed to enqueue task", zap.String("task", taskType), zap.Error(err))
		return
	}

	if err := s.redis.Set(ctx, key, today, 48*time.Hour).Err(); err != nil {
		s.logger.Error("Failed to set last run marker", zap.String("task", taskType), zap.Error(err))
	}

	s.logger.Info("Enqueued daily job", zap.String("task", taskType), zap.String("day", today))
}
