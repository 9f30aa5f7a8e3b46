package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "delivery",
	Pass: "delivery",
	Name: "delivery_db",
}

var defaultKafka = Kafka{
	Topic:   "order-events",
	GroupID: "delivery-platform",
}

var defaultNotify = Notify{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    500 * time.Millisecond,
}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultJobs = Jobs{
	DispatchSpec: "*/5 * * * * *",
	HubLat:       0,
	HubLon:       0,
	OverdueAfter: 45 * time.Minute,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default order-event consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultNotify returns the default broadcast retry settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultPprof returns the default profiling endpoint settings.
func DefaultPprof() Pprof {
	return defaultPprof
}

// DefaultRateLimit returns the default per-client rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultJobs returns the default background job settings.
func DefaultJobs() Jobs {
	return defaultJobs
}
