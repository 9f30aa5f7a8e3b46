package delivery

import (
	"context"
	"encoding/json"
	"time"

	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
)

// adminTopic receives every delivery status change for the dashboard feed.
const adminTopic = "admin.deliveries"

func orderTopic(orderID string) string {
	return "order." + orderID + ".status"
}

type statusEvent struct {
	DeliveryID string        `json:"delivery_id"`
	OrderID    string        `json:"order_id"`
	CourierID  *int64        `json:"courier_id,omitempty"`
	Status     domain.Status `json:"status"`
	At         time.Time     `json:"at"`
}

// publishStatus broadcasts a status change. Fire-and-forget: a failed
// broadcast is logged and never fails the operation that caused it.
func (s *Service) publishStatus(ctx context.Context, d *domain.Delivery) {
	if s.broadcast == nil {
		return
	}
	payload, err := json.Marshal(statusEvent{
		DeliveryID: d.ID,
		OrderID:    d.OrderID,
		CourierID:  d.CourierID,
		Status:     d.Status,
		At:         s.now(),
	})
	if err != nil {
		s.logger.Error("status event marshal failed", logx.Any("err", err))
		return
	}
	for _, topic := range []string{orderTopic(d.OrderID), adminTopic} {
		if err := s.broadcast.Publish(ctx, topic, payload); err != nil {
			s.logger.Warn("status broadcast failed",
				logx.String("topic", topic),
				logx.String("delivery_id", d.ID),
				logx.Any("err", err),
			)
		}
	}
}
