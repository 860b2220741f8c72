package weather

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/get2wurk/get2wurk-api/internal/models"
	weatherSvc "github.com/get2wurk/get2wurk-api/internal/services/weather"
)

const timeoutDuration = 10 * time.Second

type weatherGetter interface {
	GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type Handler struct {
	service weatherGetter
}

func NewHandler(svc weatherGetter) *Handler {
	return &Handler{service: svc}
}

// GetWeather
// @Summary Current conditions at a coordinate
// @Description Returns the normalized hourly observation used by the recommender
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.Observation
// @Failure 400
// @Failure 401
// @Failure 502
// @Security ApiKeyAuth
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	obs, err := h.service.GetByCoords(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, weatherSvc.ErrAllProvidersFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, obs)
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
