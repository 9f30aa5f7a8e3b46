package notify

import (
	"context"
	"errors"
	"time"

	"delivery-platform/internal/logx"
)

// RetryConfig describes the retry behavior of RetryingPublisher.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingPublisher decorates a Publisher with bounded retries. Broadcasting
// is fire-and-forget for the rest of the system, so after the final attempt
// the event is counted as dropped and the last error returned to the caller,
// who logs it and moves on.
type RetryingPublisher struct {
	next    Publisher
	logger  logx.Logger
	retries counter
	dropped counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingPublisher wraps next with retry behavior. Returns nil when next is nil.
func NewRetryingPublisher(next Publisher, logger logx.Logger, retries, dropped counter, cfg RetryConfig) *RetryingPublisher {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingPublisher{
		next:    next,
		logger:  logger,
		retries: retries,
		dropped: dropped,
		cfg:     cfg,
		sleep:   time.Sleep,
	}
}

// Publish attempts the broadcast up to MaxAttempts times with backoff.
func (p *RetryingPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, topic, payload)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("broadcast retry",
			logx.String("topic", topic),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, p.sleep, delay) {
			break
		}
	}
	if p.dropped != nil {
		p.dropped.Inc()
	}
	return lastErr
}

func isRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// backoff doubles the base delay per attempt, capped at max.
func backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	d := base << (attempt - 1)
	if max > 0 && d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, sleep func(time.Duration), d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	sleep(d)
	return ctx.Err() == nil
}
