package handlers

import "delivery-platform/internal/domain"

func (req createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		Name:        req.Name,
		Phone:       req.Phone,
		Status:      req.Status,
		VehicleType: req.VehicleType,
	}
}

func (req updateCourierRequest) toModel(id int64) domain.PartialCourierUpdate {
	return domain.PartialCourierUpdate{
		ID:          id,
		Name:        req.Name,
		Phone:       req.Phone,
		Status:      req.Status,
		VehicleType: req.VehicleType,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Status:          c.Status,
		VehicleType:     c.VehicleType,
		Rating:          c.Rating,
		TotalDeliveries: c.TotalDeliveries,
		IsActive:        c.IsActive,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}
