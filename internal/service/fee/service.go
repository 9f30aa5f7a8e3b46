package fee

import (
	"context"
	"time"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
)

// Service owns the fee configuration and quotes fees/ETAs against it.
// Windows are evaluated at the current wall-clock hour, not the order time.
type Service struct {
	repo             configRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a fee Service.
func NewService(r configRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// EnsureDefaults inserts the documented default config if no row exists yet.
// Called once at startup so reads never have to lazy-initialize.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if cfg != nil {
		return nil
	}
	def := domain.DefaultFeeConfig()
	if err := s.repo.Save(ctx, def); err != nil {
		return err
	}
	s.logger.Info("fee config initialized with defaults",
		logx.Float64("base_price", def.BasePrice),
		logx.Float64("price_per_km", def.PricePerKm),
	)
	return nil
}

// Config returns the current fee configuration.
func (s *Service) Config(ctx context.Context) (domain.FeeConfig, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return domain.FeeConfig{}, err
	}
	if cfg == nil {
		return domain.FeeConfig{}, apperr.ErrNotFound
	}
	return *cfg, nil
}

// Update replaces the fee configuration. Admin-only at the calling layer.
func (s *Service) Update(ctx context.Context, cfg domain.FeeConfig) error {
	if !cfg.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Save(ctx, cfg); err != nil {
		return err
	}
	s.logger.Info("fee config updated",
		logx.Float64("base_price", cfg.BasePrice),
		logx.Float64("price_per_km", cfg.PricePerKm),
		logx.Float64("rush_multiplier", cfg.RushHourMultiplier),
		logx.Float64("night_multiplier", cfg.NightFeeMultiplier),
	)
	return nil
}

// Quote computes the fee and ETA for a distance using the stored config and
// the current hour.
func (s *Service) Quote(ctx context.Context, distanceKm float64) (float64, int, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return 0, 0, err
	}
	hour := s.now().Hour()
	feeAmount, err := Calculate(distanceKm, hour, cfg)
	if err != nil {
		return 0, 0, err
	}
	minutes, err := EstimateMinutes(distanceKm, hour, cfg)
	if err != nil {
		return 0, 0, err
	}
	return feeAmount, minutes, nil
}
