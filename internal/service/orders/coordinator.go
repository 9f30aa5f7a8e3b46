package orders

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"

	"github.com/google/uuid"
)

// newOrdersTopic receives an event for every created order.
const newOrdersTopic = "orders.new"

func customerTopic(customerID string) string {
	return "customer." + customerID + ".orders"
}

// Coordinator creates orders, keeps their status, and fans status changes
// out to the broadcast channel. It carries no algorithmic weight beyond line
// item summation; it exists because it is the trigger point for deliveries.
type Coordinator struct {
	repo             orderRepository
	broadcast        publisher
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewCoordinator creates a new order Coordinator.
func NewCoordinator(repo orderRepository, broadcast publisher, timeout time.Duration, logger logx.Logger) *Coordinator {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Coordinator{
		repo:             repo,
		broadcast:        broadcast,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

func (c *Coordinator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.operationTimeout)
}

func validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return apperr.ErrInvalid
	}
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Price < 0 || it.Quantity < 1 {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Create persists a new order with its items. The total is the sum of
// price*quantity over the items, rounded to 2 decimal places.
func (c *Coordinator) Create(ctx context.Context, customerID string, items []domain.OrderItem) (*domain.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, apperr.ErrInvalid
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	o := &domain.Order{
		ID:         c.newID(),
		CustomerID: customerID,
		Items:      items,
		Total:      math.Round(total*100) / 100,
		Status:     domain.StatusPending,
		CreatedAt:  c.now(),
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	c.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("order_id", o.ID),
		logx.String("customer_id", o.CustomerID),
		logx.Float64("total", o.Total),
	)
	c.publish(ctx, newOrdersTopic, o)
	c.publish(ctx, customerTopic(o.CustomerID), o)

	return o, nil
}

// Get returns an order by its ID.
func (c *Coordinator) Get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	o, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// UpdateStatus persists a new order status and broadcasts the change.
func (c *Coordinator) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || !status.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	ok, err := c.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	o, err := c.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}

	c.logger.Info("order status changed",
		logx.String("event", "order_status_changed"),
		logx.String("order_id", o.ID),
		logx.String("status", string(o.Status)),
	)
	c.publish(ctx, customerTopic(o.CustomerID), o)

	return o, nil
}

type orderEvent struct {
	OrderID    string        `json:"order_id"`
	CustomerID string        `json:"customer_id"`
	Total      float64       `json:"total"`
	Status     domain.Status `json:"status"`
	At         time.Time     `json:"at"`
}

// publish broadcasts an order event. Failures are logged and swallowed; the
// state mutation that caused the event is never rolled back.
func (c *Coordinator) publish(ctx context.Context, topic string, o *domain.Order) {
	if c.broadcast == nil {
		return
	}
	payload, err := json.Marshal(orderEvent{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total,
		Status:     o.Status,
		At:         c.now(),
	})
	if err != nil {
		c.logger.Error("order event marshal failed", logx.Any("err", err))
		return
	}
	if err := c.broadcast.Publish(ctx, topic, payload); err != nil {
		c.logger.Warn("order broadcast failed",
			logx.String("topic", topic),
			logx.String("order_id", o.ID),
			logx.Any("err", err),
		)
	}
}
