package app

import "delivery-platform/internal/logx"

// NewLogger builds the process-wide structured logger.
func NewLogger() (logx.Logger, error) {
	return logx.NewProduction()
}
