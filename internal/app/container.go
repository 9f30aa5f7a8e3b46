package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-platform/internal/config"
	"delivery-platform/internal/http/handlers"
	"delivery-platform/internal/http/middleware/ratelimit"
	"delivery-platform/internal/http/pprofserver"
	"delivery-platform/internal/http/router"
	"delivery-platform/internal/jobs"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/metrics"
	"delivery-platform/internal/notify"
	"delivery-platform/internal/repository"
	"delivery-platform/internal/service/courier"
	"delivery-platform/internal/service/delivery"
	"delivery-platform/internal/service/fee"
	"delivery-platform/internal/service/matching"
	"delivery-platform/internal/service/orders"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// ForWorker switches the builder to the worker wiring (Kafka consumer, no HTTP).
func (b *ContainerBuilder) ForWorker() *ContainerBuilder {
	b.worker = true
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerNotify(container); err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if b.worker {
		if err := registerKafka(container); err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
		return container, nil
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the container for the Kafka worker process.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().ForWorker().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		metrics.NewCounters,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerNotify(container *dig.Container) error {
	provider := func(
		ctx context.Context,
		cfg *config.Config,
		logger logx.Logger,
		counters *metrics.Counters,
	) (notify.Publisher, error) {
		if cfg.Redis.Addr == "" {
			logger.Info("redis not configured, broadcasts disabled")
			return notify.Nop(), nil
		}
		client, err := notify.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return notify.NewRetryingPublisher(
			notify.NewRedisPublisher(client),
			logger,
			counters.NotifyRetries,
			counters.NotifyDropped,
			notify.RetryConfig{
				MaxAttempts: cfg.Notify.MaxAttempts,
				BaseDelay:   cfg.Notify.BaseDelay,
				MaxDelay:    cfg.Notify.MaxDelay,
			},
		), nil
	}
	return provideAll(container, provider)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewCourierRepo,
		repository.NewDeliveryRepo,
		repository.NewOrderRepo,
		repository.NewFeeConfigRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.CourierRepo, timeout time.Duration) *courier.Service {
			return courier.NewService(repo, timeout)
		},
		func(repo *repository.CourierRepo, timeout time.Duration) *matching.Service {
			return matching.NewService(repo, timeout)
		},
		func(repo *repository.FeeConfigRepo, timeout time.Duration, logger logx.Logger) *fee.Service {
			return fee.NewService(repo, timeout, logger)
		},
		func(
			repo *repository.DeliveryRepo,
			orderRepo *repository.OrderRepo,
			fees *fee.Service,
			broadcast notify.Publisher,
			counters *metrics.Counters,
			timeout time.Duration,
			logger logx.Logger,
		) *delivery.Service {
			return delivery.NewService(repo, orderRepo, fees, broadcast,
				counters.AssignConflicts, timeout, logger)
		},
		func(
			repo *repository.OrderRepo,
			broadcast notify.Publisher,
			timeout time.Duration,
			logger logx.Logger,
		) *orders.Coordinator {
			return orders.NewCoordinator(repo, broadcast, timeout, logger)
		},
		func(svc *delivery.Service) *orders.Processor {
			return orders.NewProcessor(svc)
		},
	)
}

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func(svc *delivery.Service, matcher *matching.Service, cfg *config.Config, logger logx.Logger) *jobs.DispatchJob {
			return jobs.NewDispatchJob(svc, svc, matcher,
				cfg.Jobs.HubLat, cfg.Jobs.HubLon, cfg.Jobs.DispatchSpec, logger)
		},
		func(svc *delivery.Service, cfg *config.Config, logger logx.Logger) *jobs.OverdueJob {
			return jobs.NewOverdueJob(svc, cfg.Jobs.OverdueAfter, logger)
		},
		jobs.NewJobManager,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	depsProvider := func(
		cfg *config.Config,
		logger logx.Logger,
		base *handlers.Handlers,
		couriers *handlers.CourierHandler,
		ordersH *handlers.OrderHandler,
		deliveries *handlers.DeliveryHandler,
		fees *handlers.FeeHandler,
		rl *ratelimit.Middleware,
		counters *metrics.Counters,
	) router.Deps {
		return router.Deps{
			Logger:     logger,
			Base:       base,
			Couriers:   couriers,
			Orders:     ordersH,
			Deliveries: deliveries,
			Fees:       fees,
			RateLimit:  rl,
			Counters:   counters,
			AdminToken: cfg.AdminToken,
		}
	}
	pprofProvider := func(cfg *config.Config) *http.Server {
		if !cfg.Pprof.Enabled {
			return nil
		}
		return &http.Server{
			Addr: cfg.Pprof.Addr,
			Handler: pprofserver.Handler(pprofserver.Config{
				User: cfg.Pprof.User,
				Pass: cfg.Pprof.Pass,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	if err := container.Provide(pprofProvider, dig.Name("pprof_server")); err != nil {
		return fmt.Errorf("provide pprof server: %w", err)
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewDeliveryUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewFeeUsecase,
		handlers.NewFeeHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		depsProvider,
		router.New,
		serverProvider,
	)
}
