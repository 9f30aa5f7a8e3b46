package orders

import (
	"context"
	"errors"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

// Processor reacts to order events from the ordering system: an order marked
// ready gets a delivery, a cancelled order cancels its delivery, a delivered
// order completes it. Unknown statuses are ignored.
type Processor struct {
	delivery DeliveryPort
	factory  *actionFactory
}

// NewProcessor creates a new orders Processor.
func NewProcessor(deliverySvc DeliveryPort) *Processor {
	p := &Processor{delivery: deliverySvc}
	p.factory = newActionFactory(p.onReady, p.onCancelled, p.onDelivered)
	return p
}

// Handle processes a single order event.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onReady(ctx context.Context, e Event) error {
	_, err := p.delivery.Create(ctx, e.OrderID, e.DistanceKm)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrConflict):
		// delivery already exists for this order; the event was redelivered
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		// an order we do not know; nothing to do
		return nil
	default:
		// ErrInvalid propagates so the transport can classify the event
		// as permanently failed
		return err
	}
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	return p.moveDelivery(ctx, e.OrderID, domain.StatusCancelled)
}

func (p *Processor) onDelivered(ctx context.Context, e Event) error {
	return p.moveDelivery(ctx, e.OrderID, domain.StatusDelivered)
}

func (p *Processor) moveDelivery(ctx context.Context, orderID string, status domain.Status) error {
	d, err := p.delivery.ByOrder(ctx, orderID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = p.delivery.UpdateStatus(ctx, d.ID, status)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrInvalid):
		// already terminal or an illegal jump; redelivery cannot fix it
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	default:
		return err
	}
}
