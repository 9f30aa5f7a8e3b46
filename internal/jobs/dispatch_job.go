package jobs

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/service/matching"
)

type pendingLister interface {
	ListPending(ctx context.Context) ([]domain.Delivery, error)
}

type assigner interface {
	Assign(ctx context.Context, deliveryID string, courierID int64) (domain.AssignResult, error)
}

type nearestFinder interface {
	Nearest(ctx context.Context, lat, lon float64) ([]matching.Candidate, error)
}

// DispatchJob periodically assigns the oldest pending deliveries to the
// couriers closest to the dispatch hub.
type DispatchJob struct {
	deliveries pendingLister
	assign     assigner
	matcher    nearestFinder
	hubLat     float64
	hubLon     float64
	spec       string
	cron       *cron.Cron
	logger     logx.Logger
}

// NewDispatchJob creates a new DispatchJob.
func NewDispatchJob(deliveries pendingLister, assign assigner, matcher nearestFinder,
	hubLat, hubLon float64, spec string, logger logx.Logger) *DispatchJob {
	return &DispatchJob{
		deliveries: deliveries,
		assign:     assign,
		matcher:    matcher,
		hubLat:     hubLat,
		hubLon:     hubLon,
		spec:       spec,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(logx.String("component", "dispatch_job")),
	}
}

// Start schedules the job.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		if err := j.runOnce(context.Background()); err != nil {
			j.logger.Error("dispatch run failed", logx.Any("err", err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("dispatch job started", logx.String("spec", j.spec))
	return nil
}

// Stop stops the job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("dispatch job stopped")
}

func (j *DispatchJob) runOnce(ctx context.Context) error {
	pending, err := j.deliveries.ListPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	candidates, err := j.matcher.Nearest(ctx, j.hubLat, j.hubLon)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	// oldest delivery first, closest courier first; a candidate is consumed
	// only when an attempt on the courier itself resolves (assigned, busy,
	// gone) — a delivery taken by someone else leaves the candidate free
	next := 0
	for _, d := range pending {
		for next < len(candidates) {
			cand := candidates[next]

			res, err := j.assign.Assign(ctx, d.ID, cand.Courier.ID)
			if err != nil {
				if errors.Is(err, apperr.ErrAlreadyAssigned) {
					break
				}
				if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrNotFound) {
					next++
					continue
				}
				return err
			}
			next++

			j.logger.Info("delivery dispatched",
				logx.String("delivery_id", res.DeliveryID),
				logx.Int64("courier_id", res.CourierID),
				logx.Float64("courier_distance_km", cand.DistanceKm),
			)
			break
		}
		if next >= len(candidates) {
			break
		}
	}
	return nil
}
