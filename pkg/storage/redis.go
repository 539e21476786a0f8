package storage

import (
	"context"

	"github.com/example/moldz3d/pkg/config"
	"github.com/go-redis/redis/v8"
)

// Redis backs the cart slot with a shared Redis instance so several
// storefront processes can see one cart. Change notifications ride a
// pub/sub channel; the payload is the writer's origin id so a process can
// ignore its own writes, like a browser tab never receiving its own
// storage event.
type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(cfg *config.RedisConfig, channel string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		channel: channel,
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return value, err
}

func (r *Redis) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) NotifyChange(ctx context.Context, origin string) error {
	return r.client.Publish(ctx, r.channel, origin).Err()
}

func (r *Redis) WatchChanges(ctx context.Context, origin string, fn func()) error {
	sub := r.client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if msg.Payload != origin {
					fn()
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
