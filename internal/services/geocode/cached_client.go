package geocode

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type geocoder interface {
	Geocode(ctx context.Context, query string) (models.LatLon, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedClient memoizes geocode results in redis. Addresses don't move, so
// the TTL is long and only misses hit Nominatim.
type CachedClient struct {
	inner  geocoder
	cache  cacheClient[models.LatLon]
	logger zerolog.Logger
}

func NewCachedClient(inner geocoder, cache cacheClient[models.LatLon], logger zerolog.Logger) *CachedClient {
	return &CachedClient{inner: inner, cache: cache, logger: logger}
}

func (c *CachedClient) Geocode(ctx context.Context, query string) (models.LatLon, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(query))

	pos, err := c.cache.Get(ctx, key)
	if err == nil {
		return pos, nil
	}

	pos, err = c.inner.Geocode(ctx, query)
	if err != nil {
		return models.LatLon{}, err
	}

	if err := c.cache.Set(ctx, key, pos); err != nil {
		c.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(err).
			Msg("geocode cache set failed")
	}
	return pos, nil
}
