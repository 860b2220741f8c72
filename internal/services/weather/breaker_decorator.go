package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient shields a weather client behind a circuit breaker so a dead
// upstream fails fast instead of burning the request timeout.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Name() string { return b.name }

func (b *BreakerClient) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, lat, lon)
	})
	if err != nil {
		return models.Observation{}, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	res, ok := result.(models.Observation)
	if !ok {
		return models.Observation{}, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}
