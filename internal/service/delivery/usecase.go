package delivery

import (
	"context"
	"errors"
	"strings"
	"time"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"

	"github.com/google/uuid"
)

// Service - the delivery lifecycle: creation, courier assignment, status
// transitions, and rating aggregation.
type Service struct {
	repo             deliveryRepository
	orders           orderGetter
	fees             feeQuoter
	broadcast        publisher
	conflicts        counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewService creates a new delivery Service.
func NewService(
	repo deliveryRepository,
	orders orderGetter,
	fees feeQuoter,
	broadcast publisher,
	conflicts counter,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		orders:           orders,
		fees:             fees,
		broadcast:        broadcast,
		conflicts:        conflicts,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create creates a delivery for an order. The fee and ETA are computed once
// here and never recomputed. The new delivery starts pending with no courier.
func (s *Service) Create(ctx context.Context, orderID string, distanceKm float64) (*domain.Delivery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || distanceKm < 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ord, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, apperr.ErrNotFound
	}

	if existing, err := s.repo.GetByOrderID(ctx, orderID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperr.ErrConflict
	}

	feeAmount, minutes, err := s.fees.Quote(ctx, distanceKm)
	if err != nil {
		return nil, err
	}

	d := &domain.Delivery{
		ID:               s.newID(),
		OrderID:          orderID,
		Status:           domain.StatusPending,
		Fee:              feeAmount,
		DistanceKm:       distanceKm,
		EstimatedMinutes: minutes,
		CreatedAt:        s.now(),
	}
	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("delivery created",
		logx.String("event", "delivery_created"),
		logx.String("delivery_id", d.ID),
		logx.String("order_id", d.OrderID),
		logx.Float64("fee", d.Fee),
		logx.Int("estimated_minutes", d.EstimatedMinutes),
	)
	s.publishStatus(ctx, d)

	return d, nil
}

// Assign assigns a courier to a delivery. The delivery row is locked for the
// duration of the transaction, so of two concurrent assignment attempts
// exactly one succeeds and the loser observes ErrAlreadyAssigned. Both the
// delivery and the courier mutation commit together or not at all.
func (s *Service) Assign(ctx context.Context, deliveryID string, courierID int64) (domain.AssignResult, error) {
	deliveryID = strings.TrimSpace(deliveryID)
	if deliveryID == "" || courierID <= 0 {
		return domain.AssignResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.AssignResult
	err := s.repo.WithTx(ctx, func(tx TxRepository) error {
		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		if d.Assigned() {
			return apperr.ErrAlreadyAssigned
		}
		if d.Status.Terminal() {
			return apperr.ErrConflict
		}

		c, err := tx.GetCourierForUpdate(ctx, courierID)
		if err != nil {
			return err
		}
		if c == nil || !c.IsActive {
			return apperr.ErrNotFound
		}
		if c.Status != domain.CourierAvailable {
			return apperr.ErrConflict
		}

		if err := tx.SetDeliveryCourier(ctx, d.ID, c.ID, domain.StatusPreparing); err != nil {
			return err
		}
		if err := tx.UpdateCourierStatus(ctx, c.ID, domain.CourierBusy); err != nil {
			return err
		}

		result = domain.AssignResult{
			DeliveryID:  d.ID,
			OrderID:     d.OrderID,
			CourierID:   c.ID,
			VehicleType: c.VehicleType,
			Status:      domain.StatusPreparing,
		}
		return nil
	})
	if err != nil {
		if s.conflicts != nil &&
			(errors.Is(err, apperr.ErrAlreadyAssigned) || errors.Is(err, apperr.ErrConflict)) {
			s.conflicts.Inc()
		}
		return domain.AssignResult{}, err
	}

	s.logger.Info("courier assigned",
		logx.String("event", "courier_assigned"),
		logx.String("delivery_id", result.DeliveryID),
		logx.String("order_id", result.OrderID),
		logx.Int64("courier_id", result.CourierID),
		logx.String("vehicle", string(result.VehicleType)),
	)
	s.publishStatus(ctx, &domain.Delivery{
		ID:        result.DeliveryID,
		OrderID:   result.OrderID,
		CourierID: &result.CourierID,
		Status:    result.Status,
	})

	return result, nil
}

// UpdateStatus moves a delivery to a new status. On the first transition to
// delivering the start time is stamped; on delivered the end time is stamped,
// the courier goes back to available and its completed-deliveries counter
// grows by one; on cancelled an assigned courier is released. Illegal
// transitions are rejected with ErrInvalid.
func (s *Service) UpdateStatus(ctx context.Context, deliveryID string, next domain.Status) (*domain.Delivery, error) {
	deliveryID = strings.TrimSpace(deliveryID)
	if deliveryID == "" || !next.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *domain.Delivery
	err := s.repo.WithTx(ctx, func(tx TxRepository) error {
		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		if !canTransition(d.Status, next) {
			return apperr.ErrInvalid
		}

		now := s.now()
		d.Status = next
		if next == domain.StatusDelivering && !d.HasStarted {
			d.StartTime = &now
			d.HasStarted = true
		}
		if next == domain.StatusDelivered {
			d.EndTime = &now
		}
		if err := tx.UpdateDeliveryProgress(ctx, d); err != nil {
			return err
		}

		if d.CourierID != nil && next.Terminal() {
			if err := tx.UpdateCourierStatus(ctx, *d.CourierID, domain.CourierAvailable); err != nil {
				return err
			}
			if next == domain.StatusDelivered {
				if err := tx.IncrementCourierDeliveries(ctx, *d.CourierID); err != nil {
					return err
				}
			}
		}

		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery status changed",
		logx.String("event", "delivery_status_changed"),
		logx.String("delivery_id", updated.ID),
		logx.String("order_id", updated.OrderID),
		logx.String("status", string(updated.Status)),
	)
	s.publishStatus(ctx, updated)

	return updated, nil
}

// Rate stores a customer rating for a delivery and recomputes the courier's
// rating as the arithmetic mean over all of that courier's rated deliveries.
func (s *Service) Rate(ctx context.Context, deliveryID string, rating float64, feedback *string) error {
	deliveryID = strings.TrimSpace(deliveryID)
	if deliveryID == "" || rating < 1 || rating > 5 {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.WithTx(ctx, func(tx TxRepository) error {
		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		if d.CourierID == nil {
			return apperr.ErrNoCourierAssigned
		}

		if err := tx.SaveRating(ctx, d.ID, rating, feedback); err != nil {
			return err
		}
		avg, err := tx.CourierAverageRating(ctx, *d.CourierID)
		if err != nil {
			return err
		}
		return tx.UpdateCourierRating(ctx, *d.CourierID, avg)
	})
}

// Get returns a delivery by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// ByOrder returns the delivery attached to an order, or ErrNotFound.
func (s *Service) ByOrder(ctx context.Context, orderID string) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// ListPending returns unassigned pending deliveries, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListPending(ctx)
}

// ListOverdue returns deliveries still in flight whose start time is older
// than the cutoff. Used by the overdue report job; release stays a manual
// status transition.
func (s *Service) ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOverdue(ctx, cutoff)
}
