package app

import (
	"delivery-platform/internal/config"
	"delivery-platform/internal/http/middleware/ratelimit"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/metrics"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimitMiddleware(logger logx.Logger, counters *metrics.Counters, limiter ratelimit.Limiter) *ratelimit.Middleware {
	return ratelimit.New(logger, counters.RateLimitExceeded, limiter)
}
