package handlers

import "delivery-platform/internal/domain"

type courierDTO struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	Phone           string               `json:"phone"`
	Status          domain.CourierStatus `json:"status"`
	VehicleType     domain.VehicleType   `json:"vehicle_type"`
	Rating          float64              `json:"rating"`
	TotalDeliveries int64                `json:"total_deliveries"`
	IsActive        bool                 `json:"is_active"`
	Latitude        *float64             `json:"latitude,omitempty"`
	Longitude       *float64             `json:"longitude,omitempty"`
}

type createCourierRequest struct {
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Status      domain.CourierStatus `json:"status"`
	VehicleType domain.VehicleType   `json:"vehicle_type"`
}

type updateCourierRequest struct {
	Name        *string               `json:"name,omitempty"`
	Phone       *string               `json:"phone,omitempty"`
	Status      *domain.CourierStatus `json:"status,omitempty"`
	VehicleType *domain.VehicleType   `json:"vehicle_type,omitempty"`
}

type updateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
