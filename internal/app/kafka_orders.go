package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/config"
	"delivery-platform/internal/logx"
	"delivery-platform/internal/service/orders"
	"delivery-platform/internal/transport/kafka"
)

func makeOrdersHandler(p *orders.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		err := p.Handle(ctx, event)
		if errors.Is(err, apperr.ErrInvalid) {
			// malformed event will never succeed, drop instead of redelivering
			return kafka.Permanent(err)
		}
		return err
	}
}

func registerKafka(container *dig.Container) error {
	provider := func(p *orders.Processor, cfg *config.Config, logger logx.Logger) (*kafka.Consumer, error) {
		return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic,
			makeOrdersHandler(p), logger)
	}
	return provideAll(container, provider)
}
