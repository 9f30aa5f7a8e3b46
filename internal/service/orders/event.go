package orders

import "time"

// Event is a single order event consumed from the order-events topic.
// DistanceKm is the delivery distance supplied by the ordering system.
type Event struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	DistanceKm float64   `json:"distance_km"`
	CreatedAt  time.Time `json:"created_at"`
}
