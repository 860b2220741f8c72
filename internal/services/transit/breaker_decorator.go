package transit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type alertsGetter interface {
	Name() string
	Alerts(ctx context.Context, route string) ([]models.TransitAlert, error)
}

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient wraps the MTA client in a circuit breaker. A missing API key
// and an unknown route are caller-side states, not upstream failures, so they
// pass through without tripping the breaker.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped alertsGetter
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped alertsGetter) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrUnknownRoute)
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Name() string { return b.name }

func (b *BreakerClient) Alerts(ctx context.Context, route string) ([]models.TransitAlert, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		alerts, innerErr := b.wrapped.Alerts(ctx, route)
		if errors.Is(innerErr, ErrNotConfigured) || errors.Is(innerErr, ErrUnknownRoute) {
			return nil, innerErr
		}
		return alerts, innerErr
	})
	if err != nil {
		if errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrUnknownRoute) {
			return nil, err
		}
		return nil, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	alerts, ok := result.([]models.TransitAlert)
	if !ok {
		return nil, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return alerts, nil
}
