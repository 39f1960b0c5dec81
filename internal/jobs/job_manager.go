package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	quotationExpiryJob *QuotationExpiryJob
}

func NewJobManager(quotationExpiryJob *QuotationExpiryJob) *JobManager {
	return &JobManager{
		quotationExpiryJob: quotationExpiryJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.quotationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quotation expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quotationExpiryJob.Stop()
}
