package stations

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

const snapshotKey = "stations:snapshot"

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedSource serves the station snapshot from redis, falling back to the
// GBFS client on a miss. The refresher keeps the entry warm so callers
// rarely pay for the two upstream fetches.
type CachedSource struct {
	inner  snapshotSource
	cache  cacheClient[[]models.Station]
	logger zerolog.Logger
}

func NewCachedSource(
	inner snapshotSource,
	cache cacheClient[[]models.Station],
	logger zerolog.Logger,
) *CachedSource {
	return &CachedSource{inner: inner, cache: cache, logger: logger}
}

func (s *CachedSource) Stations(ctx context.Context) ([]models.Station, error) {
	cached, err := s.cache.Get(ctx, snapshotKey)
	if err == nil && len(cached) > 0 {
		return cached, nil
	}

	return s.Refresh(ctx)
}

// Refresh fetches a fresh snapshot and re-warms the cache.
func (s *CachedSource) Refresh(ctx context.Context) ([]models.Station, error) {
	all, err := s.inner.Stations(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, snapshotKey, all); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("failed to cache station snapshot")
	}
	return all, nil
}
