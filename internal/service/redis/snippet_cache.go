package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
)

type snippetLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error)
}

// CachedSnippetSource reads snippets through the cache. Cache failures never fail a read.
type CachedSnippetSource struct {
	source snippetLister
	cache  ServiceInterface
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSnippetSource(source snippetLister, cache ServiceInterface, ttl time.Duration, logger *slog.Logger) *CachedSnippetSource {
	return &CachedSnippetSource{source: source, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedSnippetSource) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Snippet, error) {
	cached, err := c.cache.GetSnippets(ctx, ownerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warn("snippet cache read failed", slog.String("owner_id", ownerID.String()), slog.Any("error", err))
	}

	snippets, err := c.source.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.CacheSnippets(ctx, ownerID, snippets, c.ttl); err != nil {
		c.logger.Warn("snippet cache write failed", slog.String("owner_id", ownerID.String()), slog.Any("error", err))
	}

	return snippets, nil
}
