package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-platform/internal/domain"
)

// FeeConfigRepo stores the single active fee configuration row.
type FeeConfigRepo struct {
	db *pgxpool.Pool
}

// NewFeeConfigRepo creates a new FeeConfigRepo.
func NewFeeConfigRepo(db *pgxpool.Pool) *FeeConfigRepo {
	return &FeeConfigRepo{db: db}
}

// Get - returns the active fee config, nil when none is stored yet.
func (r *FeeConfigRepo) Get(ctx context.Context) (*domain.FeeConfig, error) {
	var cfg domain.FeeConfig
	err := r.db.QueryRow(ctx, `
        SELECT base_fee, per_km_fee,
               rush_multiplier, rush_start_hour, rush_end_hour,
               night_multiplier, night_start_hour, night_end_hour
        FROM fee_config WHERE id = 1
    `).Scan(&cfg.BasePrice, &cfg.PricePerKm,
		&cfg.RushHourMultiplier, &cfg.RushHourStart, &cfg.RushHourEnd,
		&cfg.NightFeeMultiplier, &cfg.NightFeeStart, &cfg.NightFeeEnd)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fee config: %w", err)
	}
	return &cfg, nil
}

// Save - upserts the active fee config.
func (r *FeeConfigRepo) Save(ctx context.Context, cfg domain.FeeConfig) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO fee_config (id, base_fee, per_km_fee,
                                rush_multiplier, rush_start_hour, rush_end_hour,
                                night_multiplier, night_start_hour, night_end_hour)
        VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO UPDATE SET
            base_fee = EXCLUDED.base_fee,
            per_km_fee = EXCLUDED.per_km_fee,
            rush_multiplier = EXCLUDED.rush_multiplier,
            rush_start_hour = EXCLUDED.rush_start_hour,
            rush_end_hour = EXCLUDED.rush_end_hour,
            night_multiplier = EXCLUDED.night_multiplier,
            night_start_hour = EXCLUDED.night_start_hour,
            night_end_hour = EXCLUDED.night_end_hour,
            updated_at = now()
    `, cfg.BasePrice, cfg.PricePerKm,
		cfg.RushHourMultiplier, cfg.RushHourStart, cfg.RushHourEnd,
		cfg.NightFeeMultiplier, cfg.NightFeeStart, cfg.NightFeeEnd)
	if err != nil {
		return fmt.Errorf("save fee config: %w", err)
	}
	return nil
}
