//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"
	"time"

	"delivery-platform/internal/domain"
)

// TxRepository is the transactional view used by lifecycle mutations.
// GetDeliveryForUpdate must take a row lock so that concurrent assignment
// attempts on the same delivery serialize.
type TxRepository interface {
	GetDeliveryForUpdate(ctx context.Context, id string) (*domain.Delivery, error)
	GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error)
	SetDeliveryCourier(ctx context.Context, deliveryID string, courierID int64, status domain.Status) error
	UpdateDeliveryProgress(ctx context.Context, d *domain.Delivery) error
	UpdateCourierStatus(ctx context.Context, id int64, status domain.CourierStatus) error
	IncrementCourierDeliveries(ctx context.Context, id int64) error
	SaveRating(ctx context.Context, deliveryID string, rating float64, feedback *string) error
	CourierAverageRating(ctx context.Context, courierID int64) (float64, error)
	UpdateCourierRating(ctx context.Context, courierID int64, rating float64) error
}

type deliveryRepository interface {
	WithTx(ctx context.Context, fn func(tx TxRepository) error) error
	Get(ctx context.Context, id string) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error)
	Insert(ctx context.Context, d *domain.Delivery) error
	ListPending(ctx context.Context) ([]domain.Delivery, error)
	ListOverdue(ctx context.Context, startedBefore time.Time) ([]domain.Delivery, error)
}

type orderGetter interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type feeQuoter interface {
	Quote(ctx context.Context, distanceKm float64) (fee float64, minutes int, err error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type counter interface {
	Inc()
}
