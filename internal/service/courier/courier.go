package courier

import (
	"context"
	"strings"
	"time"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

// Service coordinates courier business logic and orchestrates repository calls.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a courier for creation.
func validateCreate(c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(c.Phone) {
		return apperr.ErrInvalid
	}
	if c.Status == "" {
		c.Status = domain.CourierAvailable
	}
	if !c.Status.Valid() {
		return apperr.ErrInvalid
	}
	if c.VehicleType == "" {
		c.VehicleType = domain.VehicleBicycle
	}
	if !c.VehicleType.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialCourierUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.Status == nil && u.VehicleType == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.ErrInvalid
	}
	if u.VehicleType != nil && !u.VehicleType.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns couriers with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	c.IsActive = true
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

// UpdatePartial applies a partial update to a courier. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

// UpdateLocation stores the courier's reported coordinates.
func (s *Service) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	if id <= 0 || !domain.ValidateCoordinates(lat, lon) {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateLocation(ctx, id, lat, lon)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a courier. The record stays for rating history.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
