package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotifyRetriesTotal returns a Prometheus counter for the number of broadcast retry attempts
func NewNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed by the broadcast publisher",
	})
}

// NewNotifyDroppedTotal returns a Prometheus counter for broadcasts dropped after the final retry
func NewNotifyDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_dropped_total",
		Help: "Total number of broadcast events dropped after exhausting retries",
	})
}

// NewAssignConflictsTotal returns a Prometheus counter for courier assignment conflicts
func NewAssignConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_assign_conflicts_total",
		Help: "Total number of courier assignment attempts rejected due to a conflict",
	})
}

// Counters groups the service counters and the registry they are registered in.
type Counters struct {
	Registry          *prometheus.Registry
	RateLimitExceeded prometheus.Counter
	NotifyRetries     prometheus.Counter
	NotifyDropped     prometheus.Counter
	AssignConflicts   prometheus.Counter
}

// NewCounters creates the counters and registers them in a fresh registry.
func NewCounters() (*Counters, error) {
	c := &Counters{
		Registry:          prometheus.NewRegistry(),
		RateLimitExceeded: NewRateLimitExceededTotal(),
		NotifyRetries:     NewNotifyRetriesTotal(),
		NotifyDropped:     NewNotifyDroppedTotal(),
		AssignConflicts:   NewAssignConflictsTotal(),
	}
	for _, col := range []prometheus.Collector{
		c.RateLimitExceeded, c.NotifyRetries, c.NotifyDropped, c.AssignConflicts,
	} {
		if err := c.Registry.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}
