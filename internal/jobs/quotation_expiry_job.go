package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultQuotationExpirySchedule runs the sweep at the top of every hour.
const DefaultQuotationExpirySchedule = "@hourly"

// ExpireOverdueQuotationsHandler is satisfied by commands.ExpireOverdueQuotationsCommandHandler.
type ExpireOverdueQuotationsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireOverdueQuotationsCommand) (int, error)
}

// QuotationExpiryJob moves draft and sent quotations past their validity date
// to expired.
type QuotationExpiryJob struct {
	handler  ExpireOverdueQuotationsHandler
	schedule string
	now      commands.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQuotationExpiryJob builds the job. schedule is a standard five-field cron
// expression or a descriptor such as "@hourly"; empty means the default.
func NewQuotationExpiryJob(
	handler ExpireOverdueQuotationsHandler,
	schedule string,
	now commands.Clock,
	logger *slog.Logger,
) *QuotationExpiryJob {
	if schedule == "" {
		schedule = DefaultQuotationExpirySchedule
	}
	return &QuotationExpiryJob{
		handler:  handler,
		schedule: schedule,
		now:      now,
		cron:     cron.New(),
		logger:   logger.With("component", "quotation_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *QuotationExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quotation expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep. Failures are logged; the next tick retries.
func (j *QuotationExpiryJob) Run(ctx context.Context) {
	asOf := j.now()
	cmd, err := commands.NewExpireOverdueQuotationsCommand(asOf)
	if err != nil {
		j.logger.ErrorContext(ctx, "Quotation expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Quotation expiry job failed", "as_of", asOf, "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Quotations expired", "count", expired, "as_of", asOf)
	}
}

// Stop waits for a running sweep to finish.
func (j *QuotationExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Quotation expiry job stopped")
}
