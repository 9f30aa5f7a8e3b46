//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"delivery-platform/internal/domain"
)

// orderRepository defines storage operations required by the coordinator.
type orderRepository interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) (bool, error)
}

// DeliveryPort abstracts the subset of delivery lifecycle operations needed
// when handling order events.
type DeliveryPort interface {
	Create(ctx context.Context, orderID string, distanceKm float64) (*domain.Delivery, error)
	ByOrder(ctx context.Context, orderID string) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, deliveryID string, status domain.Status) (*domain.Delivery, error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
