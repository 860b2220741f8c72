package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

const nwsUserAgent = "get2wurk-api/1.0 (commute recommendations)"

var compassDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

type nwsPointsResponse struct {
	Properties struct {
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type nwsHourlyResponse struct {
	Properties struct {
		Periods []struct {
			Temperature      float64 `json:"temperature"`
			WindSpeed        string  `json:"windSpeed"`
			WindDirection    string  `json:"windDirection"`
			ShortForecast    string  `json:"shortForecast"`
			RelativeHumidity struct {
				Value *float64 `json:"value"`
			} `json:"relativeHumidity"`
			ProbabilityOfPrecipitation struct {
				Value *float64 `json:"value"`
			} `json:"probabilityOfPrecipitation"`
		} `json:"periods"`
	} `json:"properties"`
}

// ClientNWS fetches the current hourly forecast from the National Weather
// Service. Keyless: NWS only asks for a descriptive User-Agent.
type ClientNWS struct {
	pointsURL string
	client    HTTPClient
	logger    zerolog.Logger
}

func NewClientNWS(pointsURL string, httpClient HTTPClient, logger zerolog.Logger) *ClientNWS {
	return &ClientNWS{pointsURL: pointsURL, client: httpClient, logger: logger}
}

func (s *ClientNWS) Name() string { return "nws" }

// Fetch resolves the grid point for the coordinates and reads the first
// period of the hourly forecast.
func (s *ClientNWS) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	pointsURL := fmt.Sprintf("%s/%.4f,%.4f", s.pointsURL, lat, lon)

	var points nwsPointsResponse
	if err := s.getJSON(ctx, pointsURL, &points); err != nil {
		return models.Observation{}, fmt.Errorf("nws points lookup: %w", err)
	}
	if points.Properties.ForecastHourly == "" {
		return models.Observation{}, fmt.Errorf("nws points response for %.4f,%.4f has no hourly forecast", lat, lon)
	}

	var hourly nwsHourlyResponse
	if err := s.getJSON(ctx, points.Properties.ForecastHourly, &hourly); err != nil {
		return models.Observation{}, fmt.Errorf("nws hourly forecast: %w", err)
	}
	periods := hourly.Properties.Periods
	if len(periods) == 0 {
		return models.Observation{}, fmt.Errorf("nws hourly forecast has no periods")
	}
	p := periods[0]

	obs := models.Observation{
		WindSpeedMPH:     parseWindSpeedMPH(p.WindSpeed),
		WindDirectionDeg: parseWindDirectionDeg(p.WindDirection),
		TemperatureF:     p.Temperature,
		Condition:        p.ShortForecast,
		Source:           s.Name(),
	}
	if p.RelativeHumidity.Value != nil {
		obs.HumidityPct = *p.RelativeHumidity.Value
	}
	if p.ProbabilityOfPrecipitation.Value != nil {
		obs.IsPrecipitation = *p.ProbabilityOfPrecipitation.Value >= 50
	}
	return obs, nil
}

func (s *ClientNWS) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", nwsUserAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().Err(cerr).Str("url", url).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NWS error: status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseWindSpeedMPH handles both "10 mph" and ranged "10 to 15 mph" values,
// taking the upper bound of a range.
func parseWindSpeedMPH(s string) float64 {
	max := 0.0
	for _, tok := range strings.Fields(strings.ReplaceAll(s, "mph", " ")) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// parseWindDirectionDeg converts a compass point ("NNE") or a bare numeric
// string into degrees; unknown values fall back to 0.
func parseWindDirectionDeg(s string) float64 {
	if deg, ok := compassDegrees[strings.TrimSpace(s)]; ok {
		return deg
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	return 0
}
