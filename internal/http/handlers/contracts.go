package handlers

import (
	"context"
	"time"

	"delivery-platform/internal/domain"
	"delivery-platform/internal/service/courier"
	"delivery-platform/internal/service/delivery"
	"delivery-platform/internal/service/fee"
	"delivery-platform/internal/service/orders"
)

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
	Deactivate(ctx context.Context, id int64) error
}

// NewCourierUsecase wires a courier.Service into a courierUsecase.
func NewCourierUsecase(svc *courier.Service) courierUsecase {
	return svc
}

type deliveryUsecase interface {
	Create(ctx context.Context, orderID string, distanceKm float64) (*domain.Delivery, error)
	Get(ctx context.Context, id string) (*domain.Delivery, error)
	ByOrder(ctx context.Context, orderID string) (*domain.Delivery, error)
	ListPending(ctx context.Context) ([]domain.Delivery, error)
	ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Delivery, error)
	Assign(ctx context.Context, deliveryID string, courierID int64) (domain.AssignResult, error)
	UpdateStatus(ctx context.Context, deliveryID string, next domain.Status) (*domain.Delivery, error)
	Rate(ctx context.Context, deliveryID string, rating float64, feedback *string) error
}

// NewDeliveryUsecase wires a delivery.Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type orderUsecase interface {
	Create(ctx context.Context, customerID string, items []domain.OrderItem) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}

// NewOrderUsecase wires an orders.Coordinator into an orderUsecase.
func NewOrderUsecase(svc *orders.Coordinator) orderUsecase {
	return svc
}

type feeUsecase interface {
	Config(ctx context.Context) (domain.FeeConfig, error)
	Update(ctx context.Context, cfg domain.FeeConfig) error
	Quote(ctx context.Context, distanceKm float64) (float64, int, error)
}

// NewFeeUsecase wires a fee.Service into a feeUsecase.
func NewFeeUsecase(svc *fee.Service) feeUsecase {
	return svc
}
