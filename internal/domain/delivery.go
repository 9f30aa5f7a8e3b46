package domain

import "time"

// Delivery tracks one order's transport from courier assignment to completion.
// A delivery belongs to exactly one order and is assigned at most one courier.
// Cancellation is a terminal status, not deletion.
type Delivery struct {
	ID               string
	OrderID          string
	CourierID        *int64
	Status           Status
	Fee              float64
	DistanceKm       float64
	EstimatedMinutes int
	StartTime        *time.Time
	EndTime          *time.Time
	HasStarted       bool
	CustomerRating   *float64
	CustomerFeedback *string
	CreatedAt        time.Time
}

// Assigned reports whether a courier has already been assigned.
func (d Delivery) Assigned() bool {
	return d.CourierID != nil
}

// AssignResult - struct representing the result of assigning a delivery.
type AssignResult struct {
	DeliveryID  string
	OrderID     string
	CourierID   int64
	VehicleType VehicleType
	Status      Status
}
