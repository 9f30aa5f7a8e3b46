package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores order-event consumer settings. Empty brokers disable the worker consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Redis stores broadcast channel settings. Empty addr disables broadcasting.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Notify stores broadcast retry settings.
type Notify struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Jobs stores background job settings. Hub coordinates are the dispatch
// origin couriers are ranked against when auto-assigning pending deliveries.
type Jobs struct {
	DispatchSpec string
	HubLat       float64
	HubLon       float64
	OverdueAfter time.Duration
}

// Pprof stores profiling endpoint settings. Disabled unless explicitly
// enabled; remote access additionally requires basic auth.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// RateLimit stores per-client HTTP rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Config stores service settings.
type Config struct {
	Port       int
	AdminToken string
	DB         DB
	Kafka      Kafka
	Redis      Redis
	Notify     Notify
	Jobs       Jobs
	Pprof      Pprof
	RateLimit  RateLimit
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       envInt("PORT", DefaultPort()),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		DB: DB{
			Host: env("DB_HOST", DefaultDB().Host),
			Port: env("DB_PORT", DefaultDB().Port),
			User: env("DB_USER", DefaultDB().User),
			Pass: env("DB_PASS", DefaultDB().Pass),
			Name: env("DB_NAME", DefaultDB().Name),
		},
		Kafka: Kafka{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   env("KAFKA_ORDERS_TOPIC", DefaultKafka().Topic),
			GroupID: env("KAFKA_GROUP_ID", DefaultKafka().GroupID),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Notify: DefaultNotify(),
		Jobs: Jobs{
			DispatchSpec: env("JOBS_DISPATCH_SPEC", DefaultJobs().DispatchSpec),
			HubLat:       envFloat("JOBS_HUB_LAT", DefaultJobs().HubLat),
			HubLon:       envFloat("JOBS_HUB_LON", DefaultJobs().HubLon),
			OverdueAfter: envDuration("JOBS_OVERDUE_AFTER", DefaultJobs().OverdueAfter),
		},
		Pprof: Pprof{
			Enabled: envBool("PPROF_ENABLED", DefaultPprof().Enabled),
			Addr:    env("PPROF_ADDR", DefaultPprof().Addr),
			User:    os.Getenv("PPROF_USER"),
			Pass:    os.Getenv("PPROF_PASS"),
		},
		RateLimit: RateLimit{
			Enabled:    envBool("RATE_LIMIT_ENABLED", DefaultRateLimit().Enabled),
			Rate:       envFloat("RATE_LIMIT_RATE", DefaultRateLimit().Rate),
			Burst:      envInt("RATE_LIMIT_BURST", DefaultRateLimit().Burst),
			TTL:        envDuration("RATE_LIMIT_TTL", DefaultRateLimit().TTL),
			MaxBuckets: envInt("RATE_LIMIT_MAX_BUCKETS", DefaultRateLimit().MaxBuckets),
		},
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
