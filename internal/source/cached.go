package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-engine/internal/cache"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedFetcher serves a resource from the cache and falls back to the
// wrapped fetcher on a miss. Concurrent misses share one upstream fetch.
type CachedFetcher struct {
	next  Fetcher
	cache domain.Cache
	kind  string
	ttl   time.Duration
	group singleflight.Group
}

func NewCachedFetcher(next Fetcher, c domain.Cache, kind string, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{next: next, cache: c, kind: kind, ttl: ttl}
}

func (f *CachedFetcher) Location() string { return f.next.Location() }

func (f *CachedFetcher) key() string {
	return cache.ResourceKey(f.kind, f.next.Location())
}

func (f *CachedFetcher) Fetch(ctx context.Context) ([]byte, error) {
	key := f.key()

	cached, err := f.cache.Get(ctx, key)
	switch {
	case err == nil && cached != "":
		logger.Get().Debug("Resource cache hit", zap.String("key", key))
		return []byte(cached), nil
	case err != nil && !errors.Is(err, domain.ErrCacheMiss):
		logger.Get().Warn("Resource cache read failed, fetching upstream", zap.String("key", key), zap.Error(err))
	}

	// The shared fetch must not die with the first caller's context.
	ch := f.group.DoChan(key, func() (interface{}, error) {
		return f.fetchAndStore(context.WithoutCancel(ctx), key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		body, ok := res.Val.([]byte)
		if !ok {
			return nil, fmt.Errorf("unexpected type from singleflight for %s: %T", key, res.Val)
		}
		return body, nil
	}
}

func (f *CachedFetcher) fetchAndStore(ctx context.Context, key string) ([]byte, error) {
	body, err := f.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		// Not cached, so a fixed upstream is picked up on the next call.
		return body, nil
	}
	if err := f.cache.Set(ctx, key, string(body), f.ttl); err != nil {
		logger.Get().Warn("Failed to cache fetched resource", zap.String("key", key), zap.Error(err))
	} else {
		logger.Get().Debug("Cached fetched resource", zap.String("key", key), zap.Duration("ttl", f.ttl))
	}
	return body, nil
}
