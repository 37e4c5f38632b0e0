package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StoreAuditJob inspects every entity store on a cron schedule, logs records that no
// longer decode and publishes per-store gauges.
type StoreAuditJob struct {
	handler  queries.InspectStoresQueryHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStoreAuditJob creates the audit job. metrics may be nil.
// schedule accepts six-field cron expressions and descriptors such as "@every 5m".
func NewStoreAuditJob(
	handler queries.InspectStoresQueryHandler,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *StoreAuditJob {
	return &StoreAuditJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "store_audit_job"),
	}
}

// Run performs one audit. Corrupt records are logged, not returned as an error.
func (j *StoreAuditJob) Run(ctx context.Context) ([]queries.InspectStoresQueryResponse, error) {
	reports, err := j.handler.Handle(ctx, queries.NewInspectStoresQuery())
	if err != nil {
		return nil, err
	}

	for _, r := range reports {
		if j.metrics != nil {
			j.metrics.ObserveStore(r.Entity, r.NextID.Uint64(), r.Records, len(r.Corrupt))
		}
		if !r.Healthy() {
			j.logger.WarnContext(ctx, "Corrupt records found",
				"entity", r.Entity,
				"corrupt", r.Corrupt,
				"records", r.Records,
			)
		}
	}
	return reports, nil
}

// Start schedules the audit.
func (j *StoreAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Store audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store audit job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the audit and waits for a running audit to finish.
func (j *StoreAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Store audit job stopped")
}
