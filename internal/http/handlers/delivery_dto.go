package handlers

import "time"

type createDeliveryRequest struct {
	OrderID    string  `json:"order_id"`
	DistanceKm float64 `json:"distance_km"`
}

type deliveryDTO struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"order_id"`
	CourierID        *int64     `json:"courier_id,omitempty"`
	Status           string     `json:"status"`
	Fee              float64    `json:"fee"`
	DistanceKm       float64    `json:"distance_km"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	HasStarted       bool       `json:"has_started"`
	CustomerRating   *float64   `json:"customer_rating,omitempty"`
	CustomerFeedback *string    `json:"customer_feedback,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type assignDeliveryRequest struct {
	CourierID int64 `json:"courier_id"`
}

type assignDeliveryResponse struct {
	DeliveryID  string `json:"delivery_id"`
	OrderID     string `json:"order_id"`
	CourierID   int64  `json:"courier_id"`
	VehicleType string `json:"vehicle_type"`
	Status      string `json:"status"`
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type rateDeliveryRequest struct {
	Rating   float64 `json:"rating"`
	Feedback *string `json:"feedback,omitempty"`
}
