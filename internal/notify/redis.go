package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates and pings a redis client for the broadcast channel.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// RedisPublisher broadcasts payloads over redis pub/sub channels.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher backed by the given redis client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	if client == nil {
		return nil
	}
	return &RedisPublisher{client: client}
}

// Publish sends the payload to everyone subscribed to the topic.
func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.client.Publish(ctx, topic, payload).Err()
}
