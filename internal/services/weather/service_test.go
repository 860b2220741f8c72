package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type mockAPIClient struct {
	mock.Mock
	name string
}

func (m *mockAPIClient) Name() string { return m.name }

func (m *mockAPIClient) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	args := m.Called(ctx, lat, lon)
	data, ok := args.Get(0).(models.Observation)
	if !ok {
		return models.Observation{}, args.Error(1)
	}
	return data, args.Error(1)
}

func TestServiceProvider_GetByCoords(t *testing.T) {
	ctx := context.Background()
	windy := models.Observation{WindSpeedMPH: 14, WindDirectionDeg: 270, HumidityPct: 55, Source: "nws"}
	empty := models.Observation{}

	t.Run("Success", func(t *testing.T) {
		mock1 := &mockAPIClient{name: "nws"}
		mock2 := &mockAPIClient{name: "openweather"}

		mock1.On("Fetch", mock.Anything, 40.73, -73.99).Return(windy, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertNumberOfCalls(t, "Fetch", 0)
		})

		provider := NewService(zerolog.Nop(), nil, mock1, mock2)

		result, err := provider.GetByCoords(ctx, 40.73, -73.99)
		require.NoError(t, err)
		assert.Equal(t, windy, result)
	})

	t.Run("FirstFailsSecondSucceeds", func(t *testing.T) {
		mock1 := &mockAPIClient{name: "nws"}
		mock2 := &mockAPIClient{name: "openweather"}

		mock1.On("Fetch", mock.Anything, 40.73, -73.99).Return(empty, errors.New("boom"))
		mock2.On("Fetch", mock.Anything, 40.73, -73.99).Return(windy, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertExpectations(t)
		})

		provider := NewService(zerolog.Nop(), nil, mock1, mock2)

		result, err := provider.GetByCoords(ctx, 40.73, -73.99)
		require.NoError(t, err)
		assert.Equal(t, windy, result)
	})

	t.Run("AllFail", func(t *testing.T) {
		mock1 := &mockAPIClient{name: "nws"}
		mock2 := &mockAPIClient{name: "openweather"}

		mock1.On("Fetch", mock.Anything, 40.73, -73.99).Return(empty, errors.New("boom"))
		mock2.On("Fetch", mock.Anything, 40.73, -73.99).Return(empty, errors.New("boom"))

		provider := NewService(zerolog.Nop(), nil, mock1, mock2)

		_, err := provider.GetByCoords(ctx, 40.73, -73.99)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)
	})
}
