package weather

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

func TestClientNWS_Fetch_Success(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			if strings.Contains(req.URL.String(), "/points/") {
				return jsonResponse(http.StatusOK,
					`{"properties": {"forecastHourly": "https://api.weather.gov/gridpoints/OKX/33,35/forecast/hourly"}}`), nil
			}
			return jsonResponse(http.StatusOK, `{
				"properties": {
					"periods": [{
						"temperature": 61,
						"windSpeed": "10 to 15 mph",
						"windDirection": "NNE",
						"shortForecast": "Partly Cloudy",
						"relativeHumidity": {"value": 72},
						"probabilityOfPrecipitation": {"value": 20}
					}]
				}
			}`), nil
		},
	}

	cl := NewClientNWS("https://api.weather.gov/points", m, zerolog.Nop())

	obs, err := cl.Fetch(context.Background(), 40.7359, -73.9911)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, obs.WindSpeedMPH, 0.001)
	assert.InDelta(t, 22.5, obs.WindDirectionDeg, 0.001)
	assert.InDelta(t, 72.0, obs.HumidityPct, 0.001)
	assert.InDelta(t, 61.0, obs.TemperatureF, 0.001)
	assert.Equal(t, "Partly Cloudy", obs.Condition)
	assert.False(t, obs.IsPrecipitation)
	assert.Equal(t, "nws", obs.Source)
}

func TestClientNWS_Fetch_NoHourlyURL(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"properties": {}}`), nil
		},
	}

	cl := NewClientNWS("https://api.weather.gov/points", m, zerolog.Nop())

	_, err := cl.Fetch(context.Background(), 40.7359, -73.9911)
	assert.Error(t, err)
}

func TestClientNWS_Fetch_UpstreamError(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusInternalServerError, `{"detail": "oops"}`), nil
		},
	}

	cl := NewClientNWS("https://api.weather.gov/points", m, zerolog.Nop())

	_, err := cl.Fetch(context.Background(), 40.7359, -73.9911)
	assert.Error(t, err)
}

func TestParseWindSpeedMPH(t *testing.T) {
	assert.InDelta(t, 10.0, parseWindSpeedMPH("10 mph"), 0.001)
	assert.InDelta(t, 15.0, parseWindSpeedMPH("10 to 15 mph"), 0.001)
	assert.InDelta(t, 0.0, parseWindSpeedMPH(""), 0.001)
	assert.InDelta(t, 0.0, parseWindSpeedMPH("calm"), 0.001)
}

func TestParseWindDirectionDeg(t *testing.T) {
	assert.InDelta(t, 0.0, parseWindDirectionDeg("N"), 0.001)
	assert.InDelta(t, 225.0, parseWindDirectionDeg("SW"), 0.001)
	assert.InDelta(t, 123.0, parseWindDirectionDeg("123"), 0.001)
	assert.InDelta(t, 0.0, parseWindDirectionDeg("whatever"), 0.001)
}
