//go:generate mockgen -source=contracts.go -destination=fee_mocks_test.go -package=fee

package fee

import (
	"context"

	"delivery-platform/internal/domain"
)

// configRepository defines storage operations for the single fee-config row.
type configRepository interface {
	Get(ctx context.Context) (*domain.FeeConfig, error)
	Save(ctx context.Context, cfg domain.FeeConfig) error
}
