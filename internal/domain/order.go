package domain

import "time"

// OrderItem is a single order line.
type OrderItem struct {
	Name     string
	Price    float64
	Quantity int
}

// Order represents a customer order. Total is computed once at creation
// as the sum of price*quantity over the items, rounded to 2 decimal places.
type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	Total      float64
	Status     Status
	CreatedAt  time.Time
}
