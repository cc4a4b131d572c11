package jobs

import (
	"clubelect-backend/internal/config"
	"clubelect-backend/internal/logger"
	"clubelect-backend/internal/repository/postgres"
)

// JobRunner coordinates the scheduled reminder jobs. Jobs only write
// notifications; none of them drives a nomination or event state
// transition — window validity is always re-checked at the point of
// use instead.
type JobRunner struct {
	store  *postgres.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{store: store, config: cfg}
}

// Config returns the application configuration
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

// RunAll runs every reminder job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.NotifyClosingNominations()
	jr.NotifyUpcomingEvents()
}
