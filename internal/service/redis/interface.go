package redis

import (
	"context"
	"errors"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
)

var ErrCacheMiss = errors.New("cache miss")

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServiceInterface interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error

	CacheSnippets(ctx context.Context, ownerID uuid.UUID, snippets []entity.Snippet, ttl time.Duration) error
	GetSnippets(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error)

	Health(ctx context.Context) error
	Close() error
}
