package stations

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const informationBody = `{
	"data": {"stations": [
		{"station_id": "a", "name": "W 21 St & 6 Ave", "lat": 40.7414, "lon": -73.9943},
		{"station_id": "b", "name": "E 14 St & 1 Ave", "lat": 40.7312, "lon": -73.9827}
	]}
}`

const statusBody = `{
	"data": {"stations": [
		{"station_id": "a", "num_bikes_available": 7, "num_ebikes_available": 2, "num_docks_available": 10},
		{"station_id": "b", "num_bikes_available": 1, "num_ebikes_available": 3, "num_docks_available": 0},
		{"station_id": "ghost", "num_bikes_available": 4, "num_ebikes_available": 0, "num_docks_available": 4}
	]}
}`

func TestClient_Stations_MergesInfoAndStatus(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			if strings.HasSuffix(req.URL.Path, "station_information.json") {
				return jsonResponse(http.StatusOK, informationBody), nil
			}
			return jsonResponse(http.StatusOK, statusBody), nil
		},
	}

	cl := NewClient("https://gbfs.citibikenyc.com/gbfs/en", m, zerolog.Nop())

	all, err := cl.Stations(context.Background())
	require.NoError(t, err)
	// The status entry without information is dropped.
	require.Len(t, all, 2)

	assert.Equal(t, "W 21 St & 6 Ave", all[0].Name)
	assert.Equal(t, 2, all[0].EbikesAvailable)
	assert.Equal(t, 5, all[0].ClassicAvailable)
	assert.Equal(t, 10, all[0].DocksAvailable)

	// Classic count floors at zero when ebikes exceed total bikes.
	assert.Equal(t, 3, all[1].EbikesAvailable)
	assert.Equal(t, 0, all[1].ClassicAvailable)
}

func TestClient_Stations_UpstreamError(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusServiceUnavailable, `{}`), nil
		},
	}

	cl := NewClient("https://gbfs.citibikenyc.com/gbfs/en", m, zerolog.Nop())

	_, err := cl.Stations(context.Background())
	assert.Error(t, err)
}
