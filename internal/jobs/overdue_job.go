package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
)

type overdueLister interface {
	ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Delivery, error)
}

// OverdueJob periodically reports deliveries that have been in transit for
// too long. It only logs; operators act on the report.
type OverdueJob struct {
	deliveries overdueLister
	after      time.Duration
	cron       *cron.Cron
	logger     logx.Logger
	now        func() time.Time
}

// NewOverdueJob creates a new OverdueJob.
func NewOverdueJob(deliveries overdueLister, after time.Duration, logger logx.Logger) *OverdueJob {
	return &OverdueJob{
		deliveries: deliveries,
		after:      after,
		cron:       cron.New(),
		logger:     logger.With(logx.String("component", "overdue_job")),
		now:        time.Now,
	}
}

// Start schedules the job to run every minute.
func (j *OverdueJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("overdue job started", logx.Duration("after", j.after))
	return nil
}

// Stop stops the job.
func (j *OverdueJob) Stop() {
	j.cron.Stop()
	j.logger.Info("overdue job stopped")
}

func (j *OverdueJob) runOnce(ctx context.Context) {
	cutoff := j.now().Add(-j.after)
	overdue, err := j.deliveries.ListOverdue(ctx, cutoff)
	if err != nil {
		j.logger.Error("overdue scan failed", logx.Any("err", err))
		return
	}

	for _, d := range overdue {
		fields := []logx.Field{
			logx.String("delivery_id", d.ID),
			logx.String("order_id", d.OrderID),
		}
		if d.StartTime != nil {
			fields = append(fields, logx.Duration("in_transit", j.now().Sub(*d.StartTime)))
		}
		if d.CourierID != nil {
			fields = append(fields, logx.Int64("courier_id", *d.CourierID))
		}
		j.logger.Warn("delivery overdue", fields...)
	}
}
