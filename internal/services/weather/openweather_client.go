package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

var precipitationConditions = map[string]bool{
	"Rain":         true,
	"Drizzle":      true,
	"Snow":         true,
	"Thunderstorm": true,
}

// ClientOpenWeather fetches current conditions from the OpenWeather API.
// Requests use imperial units so wind speed arrives in mph.
type ClientOpenWeather struct {
	apiKey string
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

func NewClientOpenWeather(apiKey, apiURL string, httpClient HTTPClient, logger zerolog.Logger) *ClientOpenWeather {
	return &ClientOpenWeather{apiKey: apiKey, apiURL: apiURL, client: httpClient, logger: logger}
}

func (s *ClientOpenWeather) Name() string { return "openweather" }

func (s *ClientOpenWeather) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	if s.apiKey == "" {
		return models.Observation{}, fmt.Errorf("openweather: no API key configured")
	}

	start := time.Now()
	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=imperial", s.apiURL, lat, lon, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Observation{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("error sending HTTP request to OpenWeather")
		return models.Observation{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return models.Observation{}, fmt.Errorf("OpenWeather error: status %s", resp.Status)
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return models.Observation{}, err
	}

	obs := models.Observation{
		WindSpeedMPH:     raw.Wind.Speed,
		WindDirectionDeg: raw.Wind.Deg,
		HumidityPct:      raw.Main.Humidity,
		TemperatureF:     raw.Main.Temp,
		Source:           s.Name(),
	}
	if len(raw.Weather) > 0 {
		obs.Condition = raw.Weather[0].Main
		obs.IsPrecipitation = precipitationConditions[raw.Weather[0].Main]
	}

	s.logger.Info().
		Float64("lat", lat).
		Float64("lon", lon).
		Dur("duration", time.Since(start)).
		Msg("successfully fetched OpenWeather conditions")

	return obs, nil
}
