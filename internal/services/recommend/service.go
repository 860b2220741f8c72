package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/geo"
	"github.com/get2wurk/get2wurk-api/internal/models"
	"github.com/get2wurk/get2wurk-api/internal/services/stations"
)

const (
	ruleHeadwind           = "headwind"
	ruleHumidity           = "humidity"
	ruleDefault            = "default"
	ruleWeatherUnavailable = "weather_unavailable"
	ruleEbikeFallback      = "no_ebike_nearby_classic_fallback"
)

type weatherGetter interface {
	GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type stationFinder interface {
	NearestWithEbikes(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	NearestWithClassic(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	NearestWithDocks(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	FindByName(ctx context.Context, name string) (models.Station, error)
}

type alertsGetter interface {
	Alerts(ctx context.Context, route string) ([]models.TransitAlert, error)
}

type geocoder interface {
	Geocode(ctx context.Context, query string) (models.LatLon, error)
}

type recMetrics interface {
	IncRecommendation(recommendation, bikeType string)
}

// Rules are the default thresholds; per-request prefs override the
// bike-type thresholds.
type Rules struct {
	HeadwindThresholdMPH float64
	HumidityThresholdPct float64
	BikeSpeedMPH         float64
}

// Service turns weather, station availability and transit alerts into a
// single commute recommendation.
type Service struct {
	weather  weatherGetter
	stations stationFinder
	transit  alertsGetter
	geocoder geocoder
	logger   zerolog.Logger
	rules    Rules
	metrics  recMetrics
}

func NewService(
	weather weatherGetter,
	stations stationFinder,
	transit alertsGetter,
	geocoder geocoder,
	logger zerolog.Logger,
	rules Rules,
	m recMetrics,
) *Service {
	return &Service{
		weather:  weather,
		stations: stations,
		transit:  transit,
		geocoder: geocoder,
		logger:   logger,
		rules:    rules,
		metrics:  m,
	}
}

// Recommend runs the full pipeline: route bearing, headwind, bike-type rule,
// station availability, transit alerts. Weather and alert failures degrade
// the rationale instead of failing the request.
func (s *Service) Recommend(ctx context.Context, req models.RecommendRequest) (models.RecommendResponse, error) {
	origin := req.Origin
	dest := req.Destination
	prefs := req.Prefs

	headwindThr := s.rules.HeadwindThresholdMPH
	if prefs.EbikeHeadwindThresholdMPH > 0 {
		headwindThr = prefs.EbikeHeadwindThresholdMPH
	}
	humidityThr := s.rules.HumidityThresholdPct
	if prefs.HumidityThresholdPct > 0 {
		humidityThr = prefs.HumidityThresholdPct
	}

	rationale := models.Rationale{Alerts: []models.TransitAlert{}}
	bearing := geo.InitialBearingDeg(origin.Lat, origin.Lon, dest.Lat, dest.Lon)

	bikeType := models.BikeTypeClassic
	obs, err := s.weather.GetByCoords(ctx, origin.Lat, origin.Lon)
	if err != nil {
		s.logger.Warn().
			Ctx(ctx).
			Err(err).
			Msg("weather unavailable, assuming classic conditions")
		rationale.RuleTriggered = ruleWeatherUnavailable
	} else {
		headwind := geo.HeadwindMPH(obs.WindDirectionDeg, bearing, obs.WindSpeedMPH)
		rationale.WindSpeedMPH = ptr(obs.WindSpeedMPH)
		rationale.WindDirectionDeg = ptr(obs.WindDirectionDeg)
		rationale.HeadwindMPH = ptr(headwind)
		rationale.HumidityPct = ptr(obs.HumidityPct)
		rationale.IsPrecipitation = ptr(obs.IsPrecipitation)
		bikeType, rationale.RuleTriggered = chooseBikeType(headwind, obs.HumidityPct, headwindThr, humidityThr)
	}

	if alerts, aerr := s.transit.Alerts(ctx, ""); aerr != nil {
		s.logger.Warn().
			Ctx(ctx).
			Err(aerr).
			Msg("transit alerts unavailable")
	} else {
		rationale.Alerts = alerts
	}

	bikeAllowed := prefs.BikeAllowed == nil || *prefs.BikeAllowed
	transitAllowed := prefs.TransitAllowed == nil || *prefs.TransitAllowed

	if bikeAllowed {
		resp, ok := s.tryBikePlan(ctx, origin, dest, prefs, bikeType, &rationale, transitAllowed)
		if ok {
			s.count(resp)
			return resp, nil
		}
	}

	resp := models.RecommendResponse{
		Recommendation: models.RecommendationTransit,
		BikeType:       models.BikeTypeNone,
		Summary:        "Take the subway; check the alerts below before you leave.",
		Rationale:      rationale,
		PlanB:          models.RecommendationWalk,
	}
	if !transitAllowed {
		resp.Recommendation = models.RecommendationWalk
		resp.Summary = "No bike available and transit is off the table; walking it is."
		resp.PlanB = ""
	}
	s.count(resp)
	return resp, nil
}

// RecommendByAddress geocodes both endpoints and delegates to Recommend.
func (s *Service) RecommendByAddress(ctx context.Context, req models.RecommendAddressRequest) (models.RecommendResponse, error) {
	origin, err := s.geocoder.Geocode(ctx, req.OriginAddr)
	if err != nil {
		return models.RecommendResponse{}, fmt.Errorf("origin address: %w", err)
	}
	dest, err := s.geocoder.Geocode(ctx, req.DestinationAddr)
	if err != nil {
		return models.RecommendResponse{}, fmt.Errorf("destination address: %w", err)
	}

	return s.Recommend(ctx, models.RecommendRequest{
		Origin:      origin,
		Destination: dest,
		Prefs:       req.Prefs,
	})
}

func (s *Service) tryBikePlan(
	ctx context.Context,
	origin, dest models.LatLon,
	prefs models.Prefs,
	bikeType string,
	rationale *models.Rationale,
	transitAllowed bool,
) (models.RecommendResponse, bool) {
	originStation, actualType, err := s.findOriginStation(ctx, origin, bikeType)
	if err != nil {
		s.logger.Info().
			Ctx(ctx).
			Err(err).
			Msg("no origin station with a bike, falling through to transit")
		return models.RecommendResponse{}, false
	}
	if actualType != bikeType {
		rationale.RuleTriggered = ruleEbikeFallback
	}

	destStation, err := s.findDestStation(ctx, dest, prefs.PreferredDestStationName)
	if err != nil {
		s.logger.Info().
			Ctx(ctx).
			Err(err).
			Msg("no destination station with docks, falling through to transit")
		return models.RecommendResponse{}, false
	}

	rationale.CitibikeOrigin = &originStation
	rationale.CitibikeDestination = &destStation

	eta := etaMinutes(origin, dest, s.rules.BikeSpeedMPH)
	resp := models.RecommendResponse{
		Recommendation: models.RecommendationBike,
		BikeType:       actualType,
		Summary: fmt.Sprintf("Grab a %s bike at %q and dock at %q (~%d min ride).",
			actualType, originStation.Name, destStation.Name, eta),
		EtaMinutes: &eta,
		Rationale:  *rationale,
	}
	if transitAllowed {
		resp.PlanB = models.RecommendationTransit
	}
	return resp, true
}

// findOriginStation prefers the bike type the weather rules picked, but a
// classic bike beats no bike when no ebike dock is in range.
func (s *Service) findOriginStation(ctx context.Context, origin models.LatLon, bikeType string) (models.Station, string, error) {
	if bikeType == models.BikeTypeEbike {
		st, _, err := s.stations.NearestWithEbikes(ctx, origin.Lat, origin.Lon)
		if err == nil {
			return st, models.BikeTypeEbike, nil
		}
		if !errors.Is(err, stations.ErrNoStationNearby) {
			return models.Station{}, "", err
		}
		st, _, err = s.stations.NearestWithClassic(ctx, origin.Lat, origin.Lon)
		if err != nil {
			return models.Station{}, "", err
		}
		return st, models.BikeTypeClassic, nil
	}

	st, _, err := s.stations.NearestWithClassic(ctx, origin.Lat, origin.Lon)
	if err == nil {
		return st, models.BikeTypeClassic, nil
	}
	if !errors.Is(err, stations.ErrNoStationNearby) {
		return models.Station{}, "", err
	}
	st, _, err = s.stations.NearestWithEbikes(ctx, origin.Lat, origin.Lon)
	if err != nil {
		return models.Station{}, "", err
	}
	return st, models.BikeTypeEbike, nil
}

func (s *Service) findDestStation(ctx context.Context, dest models.LatLon, preferredName string) (models.Station, error) {
	if preferredName != "" {
		st, err := s.stations.FindByName(ctx, preferredName)
		if err == nil {
			return st, nil
		}
		s.logger.Info().
			Ctx(ctx).
			Str("name", preferredName).
			Err(err).
			Msg("preferred destination station not found, using nearest with docks")
	}
	st, _, err := s.stations.NearestWithDocks(ctx, dest.Lat, dest.Lon)
	return st, err
}

func (s *Service) count(resp models.RecommendResponse) {
	if s.metrics != nil {
		s.metrics.IncRecommendation(resp.Recommendation, resp.BikeType)
	}
}

func chooseBikeType(headwindMPH, humidityPct, headwindThr, humidityThr float64) (string, string) {
	if headwindMPH >= headwindThr {
		return models.BikeTypeEbike, ruleHeadwind
	}
	if humidityPct >= humidityThr {
		return models.BikeTypeEbike, ruleHumidity
	}
	return models.BikeTypeClassic, ruleDefault
}

func etaMinutes(origin, dest models.LatLon, bikeSpeedMPH float64) int {
	distM := geo.HaversineM(origin.Lat, origin.Lon, dest.Lat, dest.Lon)
	metersPerMinute := bikeSpeedMPH * 1609.34 / 60.0
	return int(math.Ceil(distM / metersPerMinute))
}

func ptr[T any](v T) *T { return &v }
