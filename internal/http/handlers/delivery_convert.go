package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"delivery-platform/internal/domain"
)

func deliveryIDFromURL(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	return deliveryDTO{
		ID:               d.ID,
		OrderID:          d.OrderID,
		CourierID:        d.CourierID,
		Status:           string(d.Status),
		Fee:              d.Fee,
		DistanceKm:       d.DistanceKm,
		EstimatedMinutes: d.EstimatedMinutes,
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		HasStarted:       d.HasStarted,
		CustomerRating:   d.CustomerRating,
		CustomerFeedback: d.CustomerFeedback,
		CreatedAt:        d.CreatedAt,
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func assignResultToResponse(res domain.AssignResult) assignDeliveryResponse {
	return assignDeliveryResponse{
		DeliveryID:  res.DeliveryID,
		OrderID:     res.OrderID,
		CourierID:   res.CourierID,
		VehicleType: string(res.VehicleType),
		Status:      string(res.Status),
	}
}
