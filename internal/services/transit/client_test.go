package transit

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/jprobinson/gtfs/transit_realtime"
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

func alertEntity(id, header string, routes ...string) *transit_realtime.FeedEntity {
	var informed []*transit_realtime.EntitySelector
	for _, r := range routes {
		informed = append(informed, &transit_realtime.EntitySelector{RouteId: proto.String(r)})
	}
	return &transit_realtime.FeedEntity{
		Id: proto.String(id),
		Alert: &transit_realtime.Alert{
			InformedEntity: informed,
			HeaderText: &transit_realtime.TranslatedString{
				Translation: []*transit_realtime.TranslatedString_Translation{
					{Text: proto.String(header)},
				},
			},
		},
	}
}

func feedBody(t *testing.T, entities ...*transit_realtime.FeedEntity) []byte {
	t.Helper()
	feed := &transit_realtime.FeedMessage{
		Header: &transit_realtime.FeedHeader{
			GtfsRealtimeVersion: proto.String("1.0"),
		},
		Entity: entities,
	}
	body, err := proto.Marshal(feed)
	require.NoError(t, err)
	return body
}

func TestClient_Alerts_FiltersByRoute(t *testing.T) {
	body := feedBody(t,
		alertEntity("1", "L trains delayed in both directions", "L"),
		alertEntity("2", "G trains rerouted", "G"),
		alertEntity("3", "Systemwide: expect crowding"),
	)

	var gotKey string
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			gotKey = req.Header.Get("x-api-key")
			assert.Contains(t, req.URL.String(), "-l")
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(body)),
			}, nil
		},
	}

	cl := NewClient("test-key", "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs", m, zerolog.Nop())

	alerts, err := cl.Alerts(context.Background(), "l")
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)

	// The L alert plus the feed-wide alert; the G alert is filtered out.
	require.Len(t, alerts, 2)
	assert.Equal(t, "L trains delayed in both directions", alerts[0].Header)
	assert.Equal(t, []string{"L"}, alerts[0].Routes)
	assert.Equal(t, "Systemwide: expect crowding", alerts[1].Header)
	assert.Empty(t, alerts[1].Routes)
}

func TestClient_Alerts_NoKeyConfigured(t *testing.T) {
	cl := NewClient("", "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs",
		&mockHTTPClient{}, zerolog.Nop())

	_, err := cl.Alerts(context.Background(), "L")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Alerts_UnknownRoute(t *testing.T) {
	cl := NewClient("test-key", "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs",
		&mockHTTPClient{}, zerolog.Nop())

	_, err := cl.Alerts(context.Background(), "X9")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestClient_Alerts_UpstreamError(t *testing.T) {
	m := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusForbidden,
				Status:     "403 Forbidden",
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		},
	}

	cl := NewClient("bad-key", "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs", m, zerolog.Nop())

	_, err := cl.Alerts(context.Background(), "L")
	assert.Error(t, err)
}

func TestFeedByRoute_CoversAllLines(t *testing.T) {
	for _, route := range []string{"1", "2", "3", "4", "5", "6", "7", "A", "C", "E",
		"B", "D", "F", "M", "N", "Q", "R", "W", "L", "G", "J", "Z", "S"} {
		_, ok := feedByRoute[route]
		assert.True(t, ok, "route %s has no feed mapping", route)
	}
}
