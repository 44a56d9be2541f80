package jobs

import (
	"declarations-backend/internal/config"
	"declarations-backend/internal/logger"
	"declarations-backend/internal/repository"
	"declarations-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	userRepo  repository.UserRepository
	analytics service.AnalyticsService
	email     service.EmailService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(userRepo repository.UserRepository, analytics service.AnalyticsService, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		userRepo:  userRepo,
		analytics: analytics,
		email:     email,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendDailyOpsReport()
	jr.CleanupStagedFiles()
}
