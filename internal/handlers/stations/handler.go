package stations

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/get2wurk/get2wurk-api/internal/models"
	stationsSvc "github.com/get2wurk/get2wurk-api/internal/services/stations"
)

const timeoutDuration = 10 * time.Second

type stationFinder interface {
	Nearest(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	NearestWithEbikes(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	NearestWithClassic(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	NearestWithDocks(ctx context.Context, lat, lon float64) (models.Station, float64, error)
	FindByName(ctx context.Context, name string) (models.Station, error)
}

type Handler struct {
	service stationFinder
}

func NewHandler(svc stationFinder) *Handler {
	return &Handler{service: svc}
}

type nearestResponse struct {
	Station   models.Station `json:"station"`
	DistanceM float64        `json:"distance_m"`
}

// GetNearest
// @Summary Nearest CitiBike station
// @Description Finds the closest station, optionally requiring an ebike, a classic bike or open docks
// @Tags stations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param need query string false "any | ebike | classic | dock" default(any)
// @Success 200 {object} nearestResponse
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 502
// @Security ApiKeyAuth
// @Router /stations/nearest [get]
func (h *Handler) GetNearest(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	var (
		st   models.Station
		dist float64
		err  error
	)
	switch need := c.DefaultQuery("need", "any"); need {
	case "any":
		st, dist, err = h.service.Nearest(ctx, lat, lon)
	case "ebike":
		st, dist, err = h.service.NearestWithEbikes(ctx, lat, lon)
	case "classic":
		st, dist, err = h.service.NearestWithClassic(ctx, lat, lon)
	case "dock":
		st, dist, err = h.service.NearestWithDocks(ctx, lat, lon)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "need must be one of any, ebike, classic, dock"})
		return
	}

	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nearestResponse{Station: st, DistanceM: dist})
}

// Search
// @Summary Find a CitiBike station by name
// @Description Exact match first, then case-insensitive substring match
// @Tags stations
// @Produce json
// @Param name query string true "Station name or fragment"
// @Success 200 {object} models.Station
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 502
// @Security ApiKeyAuth
// @Router /stations/search [get]
func (h *Handler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	st, err := h.service.FindByName(ctx, name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stationsSvc.ErrNoStationNearby),
		errors.Is(err, stationsSvc.ErrStationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func parseLatLon(c *gin.Context) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat query parameter must be a latitude"})
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon query parameter must be a longitude"})
		return 0, 0, false
	}
	return lat, lon, true
}
