package matching

import (
	"context"
	"time"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

// courierLister defines storage operations required by the matcher.
type courierLister interface {
	ListActive(ctx context.Context) ([]domain.Courier, error)
}

// Service ranks available couriers by distance from a requested point.
type Service struct {
	repo             courierLister
	operationTimeout time.Duration
}

// NewService creates and configures a matching Service.
func NewService(r courierLister, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

// Nearest loads the active couriers and returns those able to take a delivery,
// ordered ascending by haversine distance from (lat, lon).
func (s *Service) Nearest(ctx context.Context, lat, lon float64) ([]Candidate, error) {
	if !domain.ValidateCoordinates(lat, lon) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	couriers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FindAvailable(lat, lon, couriers), nil
}
