package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

// ErrAllProvidersFailed is returned when every configured weather client in
// the chain failed or had its breaker open.
var ErrAllProvidersFailed = errors.New("all weather providers failed")

type client interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type upstreamMetrics interface {
	ObserveUpstream(upstream string, err error)
}

// ServiceProvider queries weather clients in order and returns the first
// successful observation.
type ServiceProvider struct {
	logger  zerolog.Logger
	metrics upstreamMetrics
	clients []client
}

func NewService(logger zerolog.Logger, m upstreamMetrics, clients ...client) *ServiceProvider {
	return &ServiceProvider{clients: clients, logger: logger, metrics: m}
}

func (s *ServiceProvider) GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error) {
	for _, cl := range s.clients {
		data, err := cl.Fetch(ctx, lat, lon)
		if s.metrics != nil {
			s.metrics.ObserveUpstream(cl.Name(), err)
		}
		if err != nil {
			s.logger.Warn().
				Ctx(ctx).
				Str("client", cl.Name()).
				Float64("lat", lat).
				Float64("lon", lon).
				Err(err).
				Msg("weather fetch failed, trying next provider")
			continue
		}
		s.logger.Info().
			Ctx(ctx).
			Str("client", cl.Name()).
			Msg("weather fetch succeeded")
		return data, nil
	}
	s.logger.Error().
		Ctx(ctx).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("giving up on weather lookup")
	return models.Observation{}, ErrAllProvidersFailed
}
