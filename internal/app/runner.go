package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-platform/internal/jobs"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/service/fee"
)

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runIn struct {
	dig.In

	Ctx        context.Context
	Server     *http.Server
	Pprof      *http.Server `name:"pprof_server" optional:"true"`
	Pool       *pgxpool.Pool
	Logger     logx.Logger
	Fees       *fee.Service
	JobManager *jobs.JobManager
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		if err := in.Fees.EnsureDefaults(in.Ctx); err != nil {
			return err
		}
		if err := in.JobManager.StartAll(); err != nil {
			return err
		}

		startServer(in.Server, in.Logger)
		startPprof(in.Pprof, in.Logger)
		waitForShutdown(in.Ctx, in.Logger)

		in.JobManager.StopAll()
		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		closePprof(in.Pprof, in.Logger)
		closeResources(in.Pool, in.Server, in.Logger)
		return nil
	})
}

func startPprof(server *http.Server, logger logx.Logger) {
	if server == nil {
		return
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof listen error", logx.Any("err", err))
		}
	}()
}

func closePprof(server *http.Server, logger logx.Logger) {
	if server == nil {
		return
	}
	if err := server.Close(); err != nil {
		logger.Error("pprof close error", logx.Any("err", err))
	}
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("service-delivery listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down service-delivery...")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
