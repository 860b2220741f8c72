package decorators

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type weatherGetterService interface {
	GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedService serves observations from redis before touching the provider
// chain. Keys round coordinates to ~100 m so nearby lookups share an entry.
type CachedService struct {
	inner  weatherGetterService
	cache  cacheClient[models.Observation]
	logger zerolog.Logger
}

func NewCachedService(
	inner weatherGetterService,
	cache cacheClient[models.Observation],
	logger zerolog.Logger,
) *CachedService {
	return &CachedService{inner: inner, cache: cache, logger: logger}
}

func (s *CachedService) GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error) {
	key := fmt.Sprintf("weather:%.3f:%.3f", lat, lon)

	obs, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("key", key).
			Msg("cache hit")
		return obs, nil
	}
	s.logger.Info().
		Ctx(ctx).
		Str("key", key).
		Msg("cache miss")

	obs, err = s.inner.GetByCoords(ctx, lat, lon)
	if err != nil {
		return models.Observation{}, err
	}

	if err := s.cache.Set(ctx, key, obs); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return obs, nil
}
