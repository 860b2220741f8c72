package cache

import (
	"context"
	"time"
)

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(metric string, labels ...string)
}

// MetricsDecorator records latency and hit/miss counts for every cache
// operation.
type MetricsDecorator[T any] struct {
	next      cacheClient[T]
	collector metricsCollector
	name      string
}

func NewMetricsDecorator[T any](next cacheClient[T], collector metricsCollector, name string) *MetricsDecorator[T] {
	return &MetricsDecorator[T]{next: next, collector: collector, name: name}
}

func (m *MetricsDecorator[T]) Set(ctx context.Context, key string, value T) error {
	start := time.Now()
	err := m.next.Set(ctx, key, value)
	m.collector.ObserveLatency("cache_set", time.Since(start))
	if err != nil {
		m.collector.IncrementCounter("cache_set_errors", m.name)
	} else {
		m.collector.IncrementCounter("cache_set_success", m.name)
	}
	return err
}

//nolint:ireturn
func (m *MetricsDecorator[T]) Get(ctx context.Context, key string) (T, error) {
	start := time.Now()
	value, err := m.next.Get(ctx, key)
	m.collector.ObserveLatency("cache_get", time.Since(start))
	if err != nil {
		m.collector.IncrementCounter("cache_get_misses", m.name)
	} else {
		m.collector.IncrementCounter("cache_get_hits", m.name)
	}
	return value, err
}
