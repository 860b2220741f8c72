package stations

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type staticSource struct {
	stations []models.Station
	err      error
}

func (s *staticSource) Stations(_ context.Context) ([]models.Station, error) {
	return s.stations, s.err
}

// Around Union Square; "far" is up in Central Park, well past any walk
// radius used in tests.
var fixture = []models.Station{
	{StationID: "close-ebike", Name: "E 17 St & Broadway", Lat: 40.7370, Lon: -73.9901, EbikesAvailable: 2, ClassicAvailable: 0, DocksAvailable: 1},
	{StationID: "close-classic", Name: "W 15 St & 6 Ave", Lat: 40.7381, Lon: -73.9965, EbikesAvailable: 0, ClassicAvailable: 4, DocksAvailable: 5},
	{StationID: "far", Name: "Central Park S & 6 Ave", Lat: 40.7659, Lon: -73.9763, EbikesAvailable: 9, ClassicAvailable: 9, DocksAvailable: 9},
}

func newTestService(src snapshotSource) *Service {
	return NewService(src, zerolog.Nop(), 700, 3)
}

func TestService_Nearest(t *testing.T) {
	svc := newTestService(&staticSource{stations: fixture})

	st, dist, err := svc.Nearest(context.Background(), 40.7359, -73.9911)
	require.NoError(t, err)
	assert.Equal(t, "close-ebike", st.StationID)
	assert.Less(t, dist, 700.0)
}

func TestService_NearestWithEbikes(t *testing.T) {
	svc := newTestService(&staticSource{stations: fixture})

	st, _, err := svc.NearestWithEbikes(context.Background(), 40.7359, -73.9911)
	require.NoError(t, err)
	assert.Equal(t, "close-ebike", st.StationID)
}

func TestService_NearestWithClassic(t *testing.T) {
	svc := newTestService(&staticSource{stations: fixture})

	st, _, err := svc.NearestWithClassic(context.Background(), 40.7359, -73.9911)
	require.NoError(t, err)
	assert.Equal(t, "close-classic", st.StationID)
}

func TestService_NearestWithDocks(t *testing.T) {
	svc := newTestService(&staticSource{stations: fixture})

	// close-ebike has only 1 dock, below the minimum of 3.
	st, _, err := svc.NearestWithDocks(context.Background(), 40.7359, -73.9911)
	require.NoError(t, err)
	assert.Equal(t, "close-classic", st.StationID)
}

func TestService_NearestFiltered_OutsideRadius(t *testing.T) {
	onlyFar := []models.Station{fixture[2]}
	svc := newTestService(&staticSource{stations: onlyFar})

	_, _, err := svc.NearestWithEbikes(context.Background(), 40.7359, -73.9911)
	assert.ErrorIs(t, err, ErrNoStationNearby)
}

func TestService_FindByName(t *testing.T) {
	svc := newTestService(&staticSource{stations: fixture})

	t.Run("ExactCaseInsensitive", func(t *testing.T) {
		st, err := svc.FindByName(context.Background(), "e 17 st & broadway")
		require.NoError(t, err)
		assert.Equal(t, "close-ebike", st.StationID)
	})

	t.Run("Substring", func(t *testing.T) {
		st, err := svc.FindByName(context.Background(), "central park")
		require.NoError(t, err)
		assert.Equal(t, "far", st.StationID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, err := svc.FindByName(context.Background(), "grand army plaza")
		assert.ErrorIs(t, err, ErrStationNotFound)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := svc.FindByName(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrStationNotFound)
	})
}

func TestService_SourceError(t *testing.T) {
	boom := errors.New("feed down")
	svc := newTestService(&staticSource{err: boom})

	_, _, err := svc.Nearest(context.Background(), 40.7359, -73.9911)
	assert.ErrorIs(t, err, boom)
}
