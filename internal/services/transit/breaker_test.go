package transit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type mockAlertsGetter struct {
	mock.Mock
}

func (m *mockAlertsGetter) Name() string { return "mock" }

func (m *mockAlertsGetter) Alerts(ctx context.Context, route string) ([]models.TransitAlert, error) {
	args := m.Called(ctx, route)
	alerts, _ := args.Get(0).([]models.TransitAlert)
	return alerts, args.Error(1)
}

func breakerCfg(repeat uint32) BreakerConfig {
	return BreakerConfig{
		TimeInterval: 30 * time.Second,
		TimeTimeOut:  10 * time.Second,
		RepeatNumber: repeat,
	}
}

func TestBreakerClient_PassesThrough(t *testing.T) {
	inner := &mockAlertsGetter{}
	alerts := []models.TransitAlert{{Header: "L trains delayed"}}
	inner.On("Alerts", mock.Anything, "L").Return(alerts, nil).Once()

	b := NewBreakerClient("MTA", breakerCfg(3), inner)

	result, err := b.Alerts(context.Background(), "L")
	require.NoError(t, err)
	assert.Equal(t, alerts, result)
	inner.AssertExpectations(t)
}

func TestBreakerClient_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &mockAlertsGetter{}
	inner.On("Alerts", mock.Anything, "L").
		Return(nil, errors.New("upstream down"))

	b := NewBreakerClient("MTA", breakerCfg(2), inner)

	for i := 0; i < 2; i++ {
		_, err := b.Alerts(context.Background(), "L")
		assert.Error(t, err)
	}

	// Breaker is open now; the wrapped client must not be called again.
	_, err := b.Alerts(context.Background(), "L")
	assert.Error(t, err)
	inner.AssertNumberOfCalls(t, "Alerts", 2)
}

func TestBreakerClient_UnknownRouteDoesNotTrip(t *testing.T) {
	inner := &mockAlertsGetter{}
	inner.On("Alerts", mock.Anything, "X9").Return(nil, ErrUnknownRoute)

	b := NewBreakerClient("MTA", breakerCfg(2), inner)

	// Well past the trip threshold; every call must still reach the client.
	for i := 0; i < 5; i++ {
		_, err := b.Alerts(context.Background(), "X9")
		assert.ErrorIs(t, err, ErrUnknownRoute)
	}
	inner.AssertNumberOfCalls(t, "Alerts", 5)

	inner.On("Alerts", mock.Anything, "L").
		Return([]models.TransitAlert{{Header: "L trains delayed"}}, nil).Once()

	alerts, err := b.Alerts(context.Background(), "L")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestBreakerClient_NotConfiguredDoesNotTrip(t *testing.T) {
	inner := &mockAlertsGetter{}
	inner.On("Alerts", mock.Anything, "L").Return(nil, ErrNotConfigured)

	b := NewBreakerClient("MTA", breakerCfg(2), inner)

	for i := 0; i < 5; i++ {
		_, err := b.Alerts(context.Background(), "L")
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
	inner.AssertNumberOfCalls(t, "Alerts", 5)
}
