package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type gbfsInformation struct {
	Data struct {
		Stations []struct {
			StationID string  `json:"station_id"`
			Name      string  `json:"name"`
			Lat       float64 `json:"lat"`
			Lon       float64 `json:"lon"`
		} `json:"stations"`
	} `json:"data"`
}

type gbfsStatus struct {
	Data struct {
		Stations []struct {
			StationID          string `json:"station_id"`
			NumBikesAvailable  int    `json:"num_bikes_available"`
			NumEbikesAvailable int    `json:"num_ebikes_available"`
			NumDocksAvailable  int    `json:"num_docks_available"`
		} `json:"stations"`
	} `json:"data"`
}

// Client reads the CitiBike GBFS feed and merges station information with
// live status into one snapshot.
type Client struct {
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

func NewClient(baseURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{baseURL: baseURL, client: httpClient, logger: logger}
}

// Stations fetches station_information.json and station_status.json and
// joins them on station_id. Classic count is total bikes minus ebikes,
// floored at zero: some stations briefly report more ebikes than bikes.
func (c *Client) Stations(ctx context.Context) ([]models.Station, error) {
	var info gbfsInformation
	if err := c.getJSON(ctx, c.baseURL+"/station_information.json", &info); err != nil {
		return nil, fmt.Errorf("gbfs station information: %w", err)
	}

	var status gbfsStatus
	if err := c.getJSON(ctx, c.baseURL+"/station_status.json", &status); err != nil {
		return nil, fmt.Errorf("gbfs station status: %w", err)
	}

	infoByID := make(map[string]int, len(info.Data.Stations))
	for i, s := range info.Data.Stations {
		infoByID[s.StationID] = i
	}

	merged := make([]models.Station, 0, len(status.Data.Stations))
	for _, st := range status.Data.Stations {
		idx, ok := infoByID[st.StationID]
		if !ok {
			continue
		}
		base := info.Data.Stations[idx]
		classic := st.NumBikesAvailable - st.NumEbikesAvailable
		if classic < 0 {
			classic = 0
		}
		merged = append(merged, models.Station{
			StationID:        st.StationID,
			Name:             base.Name,
			Lat:              base.Lat,
			Lon:              base.Lon,
			EbikesAvailable:  st.NumEbikesAvailable,
			ClassicAvailable: classic,
			DocksAvailable:   st.NumDocksAvailable,
		})
	}

	c.logger.Info().
		Ctx(ctx).
		Int("stations", len(merged)).
		Msg("fetched citibike snapshot")
	return merged, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().Err(cerr).Str("url", url).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GBFS error: status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
