package transit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/golang/protobuf/proto"
	"github.com/jprobinson/gtfs/mta"
	"github.com/jprobinson/gtfs/transit_realtime"
	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/models"
)

var (
	// ErrNotConfigured is returned when no MTA API key was provided at startup.
	ErrNotConfigured = errors.New("mta upstream not configured")
	// ErrUnknownRoute is returned for routes with no realtime feed mapping.
	ErrUnknownRoute = errors.New("unknown subway route")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var feedByRoute = map[string]mta.FeedType{
	"1": mta.NumberedFeed, "2": mta.NumberedFeed, "3": mta.NumberedFeed,
	"4": mta.NumberedFeed, "5": mta.NumberedFeed, "6": mta.NumberedFeed,
	"S": mta.NumberedFeed,
	"7": mta.SevenFeed,
	"A": mta.BlueFeed, "C": mta.BlueFeed, "E": mta.BlueFeed,
	"N": mta.YellowFeed, "Q": mta.YellowFeed, "R": mta.YellowFeed, "W": mta.YellowFeed,
	"B": mta.OrangeFeed, "D": mta.OrangeFeed, "F": mta.OrangeFeed, "M": mta.OrangeFeed,
	"L": mta.LFeed,
	"G": mta.GFeed,
	"J": mta.BrownFeed, "Z": mta.BrownFeed,
}

// Client reads MTA GTFS-realtime feeds and extracts service alerts.
type Client struct {
	apiKey  string
	feedURL string
	client  HTTPClient
	logger  zerolog.Logger
}

func NewClient(apiKey, feedURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{apiKey: apiKey, feedURL: feedURL, client: httpClient, logger: logger}
}

func (c *Client) Name() string { return "mta" }

// Alerts fetches the realtime feed covering the given route and returns its
// service alerts. An empty route reads the numbered-lines feed unfiltered.
func (c *Client) Alerts(ctx context.Context, route string) ([]models.TransitAlert, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	route = strings.ToUpper(strings.TrimSpace(route))
	feedType, ok := feedByRoute[route]
	if route != "" && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	feed, err := c.fetchFeed(ctx, feedType)
	if err != nil {
		return nil, err
	}

	alerts := extractAlerts(feed, route)
	c.logger.Info().
		Ctx(ctx).
		Str("route", route).
		Int("alerts", len(alerts)).
		Msg("fetched mta alerts")
	return alerts, nil
}

func (c *Client) fetchFeed(ctx context.Context, ft mta.FeedType) (*transit_realtime.FeedMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL+string(ft), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mta feed fetch: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("MTA error: status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mta feed read: %w", err)
	}

	var feed transit_realtime.FeedMessage
	if err := proto.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("mta feed decode: %w", err)
	}
	return &feed, nil
}

// extractAlerts pulls alert entities out of the feed. With a non-empty route
// it keeps alerts naming that route plus feed-wide alerts naming none.
func extractAlerts(feed *transit_realtime.FeedMessage, route string) []models.TransitAlert {
	alerts := make([]models.TransitAlert, 0)
	for _, ent := range feed.GetEntity() {
		alert := ent.GetAlert()
		if alert == nil {
			continue
		}

		var routes []string
		for _, sel := range alert.GetInformedEntity() {
			if rid := sel.GetRouteId(); rid != "" {
				routes = append(routes, strings.ToUpper(rid))
			}
		}
		if route != "" && len(routes) > 0 && !contains(routes, route) {
			continue
		}

		header := ""
		if translations := alert.GetHeaderText().GetTranslation(); len(translations) > 0 {
			header = translations[0].GetText()
		}
		if header == "" {
			continue
		}

		alerts = append(alerts, models.TransitAlert{Header: header, Routes: routes})
	}
	return alerts
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
