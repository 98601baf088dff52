package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
}

// NewRedisService returns nil when the server is unreachable so callers can run without a cache.
func NewRedisService(config RedisConfig) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		slog.Warn("failed to connect to redis", slog.Any("error", err))
		client.Close()
		return nil
	}

	slog.Info("connected to redis", slog.String("addr", client.Options().Addr))
	return &Service{client: client}
}

func (r *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, jsonValue, ttl).Err()
}

func (r *Service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: %s", ErrCacheMiss, key)
		}
		return fmt.Errorf("failed to get value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func snippetsKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("snippets:%s", ownerID)
}

func (r *Service) CacheSnippets(ctx context.Context, ownerID uuid.UUID, snippets []entity.Snippet, ttl time.Duration) error {
	return r.Set(ctx, snippetsKey(ownerID), snippets, ttl)
}

func (r *Service) GetSnippets(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error) {
	var snippets []entity.Snippet
	if err := r.Get(ctx, snippetsKey(ownerID), &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

func (r *Service) Close() error {
	return r.client.Close()
}

func (r *Service) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
