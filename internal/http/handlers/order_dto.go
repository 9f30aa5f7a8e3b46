package handlers

import (
	"time"

	"delivery-platform/internal/domain"
)

type orderItemDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID string         `json:"customer_id"`
	Items      []orderItemDTO `json:"items"`
}

type orderDTO struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Items      []orderItemDTO `json:"items"`
	Total      float64        `json:"total"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (req createOrderRequest) toItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items
}

func orderToResponse(o domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return orderDTO{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items:      items,
		Total:      o.Total,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}
