package weather

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

func TestBreakerClient_PassesThrough(t *testing.T) {
	inner := &mockAPIClient{name: "inner"}
	obs := models.Observation{WindSpeedMPH: 5}
	inner.On("Fetch", mock.Anything, 40.0, -74.0).Return(obs, nil).Once()

	b := NewBreakerClient("inner", BreakerConfig{
		TimeInterval: 30 * time.Second,
		TimeTimeOut:  10 * time.Second,
		RepeatNumber: 3,
	}, inner)

	result, err := b.Fetch(context.Background(), 40.0, -74.0)
	require.NoError(t, err)
	assert.Equal(t, obs, result)
	inner.AssertExpectations(t)
}

func TestBreakerClient_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &mockAPIClient{name: "inner"}
	inner.On("Fetch", mock.Anything, 40.0, -74.0).
		Return(models.Observation{}, errors.New("upstream down"))

	b := NewBreakerClient("inner", BreakerConfig{
		TimeInterval: 30 * time.Second,
		TimeTimeOut:  10 * time.Second,
		RepeatNumber: 2,
	}, inner)

	for i := 0; i < 2; i++ {
		_, err := b.Fetch(context.Background(), 40.0, -74.0)
		assert.Error(t, err)
	}

	// Breaker is open now; the wrapped client must not be called again.
	_, err := b.Fetch(context.Background(), 40.0, -74.0)
	assert.Error(t, err)
	inner.AssertNumberOfCalls(t, "Fetch", 2)
}
