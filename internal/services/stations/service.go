package stations

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/get2wurk/get2wurk-api/internal/geo"
	"github.com/get2wurk/get2wurk-api/internal/models"
)

var (
	// ErrNoStationNearby means no station satisfied the availability filter
	// within the walk radius.
	ErrNoStationNearby = errors.New("no suitable station within walk radius")
	// ErrStationNotFound means a name search matched nothing.
	ErrStationNotFound = errors.New("station not found")
)

type snapshotSource interface {
	Stations(ctx context.Context) ([]models.Station, error)
}

// Service answers proximity and name queries over the CitiBike snapshot.
type Service struct {
	source      snapshotSource
	logger      zerolog.Logger
	walkRadiusM float64
	minDocks    int
}

func NewService(source snapshotSource, logger zerolog.Logger, walkRadiusM float64, minDocks int) *Service {
	return &Service{source: source, logger: logger, walkRadiusM: walkRadiusM, minDocks: minDocks}
}

func (s *Service) Snapshot(ctx context.Context) ([]models.Station, error) {
	return s.source.Stations(ctx)
}

// Nearest returns the closest station regardless of availability.
func (s *Service) Nearest(ctx context.Context, lat, lon float64) (models.Station, float64, error) {
	all, err := s.source.Stations(ctx)
	if err != nil {
		return models.Station{}, 0, err
	}
	best, dist := closest(all, lat, lon, func(models.Station) bool { return true })
	if best == nil {
		return models.Station{}, 0, ErrStationNotFound
	}
	return *best, dist, nil
}

// NearestWithEbikes returns the closest station with at least one ebike
// inside the walk radius.
func (s *Service) NearestWithEbikes(ctx context.Context, lat, lon float64) (models.Station, float64, error) {
	return s.nearestFiltered(ctx, lat, lon, func(st models.Station) bool {
		return st.EbikesAvailable > 0
	})
}

// NearestWithClassic returns the closest station with at least one classic
// bike inside the walk radius.
func (s *Service) NearestWithClassic(ctx context.Context, lat, lon float64) (models.Station, float64, error) {
	return s.nearestFiltered(ctx, lat, lon, func(st models.Station) bool {
		return st.ClassicAvailable > 0
	})
}

// NearestWithDocks returns the closest station with enough open docks inside
// the walk radius.
func (s *Service) NearestWithDocks(ctx context.Context, lat, lon float64) (models.Station, float64, error) {
	return s.nearestFiltered(ctx, lat, lon, func(st models.Station) bool {
		return st.DocksAvailable >= s.minDocks
	})
}

// FindByName matches exactly first, then by substring, both
// case-insensitive.
func (s *Service) FindByName(ctx context.Context, name string) (models.Station, error) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return models.Station{}, ErrStationNotFound
	}

	all, err := s.source.Stations(ctx)
	if err != nil {
		return models.Station{}, err
	}

	for _, st := range all {
		if strings.ToLower(strings.TrimSpace(st.Name)) == target {
			return st, nil
		}
	}
	for _, st := range all {
		if strings.Contains(strings.ToLower(st.Name), target) {
			return st, nil
		}
	}
	return models.Station{}, ErrStationNotFound
}

func (s *Service) nearestFiltered(
	ctx context.Context,
	lat, lon float64,
	keep func(models.Station) bool,
) (models.Station, float64, error) {
	all, err := s.source.Stations(ctx)
	if err != nil {
		return models.Station{}, 0, err
	}
	best, dist := closest(all, lat, lon, keep)
	if best == nil || dist > s.walkRadiusM {
		return models.Station{}, 0, ErrNoStationNearby
	}
	return *best, dist, nil
}

func closest(all []models.Station, lat, lon float64, keep func(models.Station) bool) (*models.Station, float64) {
	var best *models.Station
	bestD := 0.0
	for i := range all {
		if !keep(all[i]) {
			continue
		}
		d := geo.HaversineM(lat, lon, all[i].Lat, all[i].Lon)
		if best == nil || d < bestD {
			best = &all[i]
			bestD = d
		}
	}
	return best, bestD
}
