package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverytrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically scans for active orders that have not moved
// within the staleness threshold and logs each one for the operations team.
type OverdueDeliveryJob struct {
	handler   queries.GetStalledOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueDeliveryJob creates a job flagging orders untouched for longer
// than threshold. The scan runs once a minute.
func NewOverdueDeliveryJob(
	handler queries.GetStalledOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_delivery_job"),
	}
}

// Start schedules the overdue-delivery scan to run every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Overdue delivery job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the overdue-delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) scan() {
	ctx := context.Background()

	query, err := queries.NewGetStalledOrdersQuery(time.Now().Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery scan could not build query", "error", err)
		return
	}

	stalled, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery scan failed", "error", err)
		return
	}

	for _, entry := range stalled {
		j.logger.WarnContext(ctx, "Delivery appears stalled",
			"orderId", entry.ID.String(),
			"agentId", entry.AssignedAgent.String(),
			"agentStatus", entry.AgentStatus.String(),
			"lastChangedAt", entry.LastChangedAt,
		)
	}
}
