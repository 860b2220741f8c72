package recommend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/get2wurk/get2wurk-api/internal/models"
	"github.com/get2wurk/get2wurk-api/internal/services/geocode"
	"github.com/get2wurk/get2wurk-api/internal/services/weather"
)

const timeoutDuration = 15 * time.Second

type recommender interface {
	Recommend(ctx context.Context, req models.RecommendRequest) (models.RecommendResponse, error)
	RecommendByAddress(ctx context.Context, req models.RecommendAddressRequest) (models.RecommendResponse, error)
}

type Handler struct {
	service recommender
}

func NewHandler(svc recommender) *Handler {
	return &Handler{service: svc}
}

// Recommend
// @Summary Recommend a commute mode
// @Description Combines wind, humidity, CitiBike availability and MTA alerts into a bike/transit/walk recommendation
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Origin, destination and preferences"
// @Success 200 {object} models.RecommendResponse
// @Failure 400
// @Failure 401
// @Failure 502
// @Security ApiKeyAuth
// @Router /recommend [post]
func (h *Handler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	resp, err := h.service.Recommend(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecommendByAddress
// @Summary Recommend a commute mode between two addresses
// @Description Geocodes both addresses, then runs the usual recommendation pipeline
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.RecommendAddressRequest true "Origin and destination addresses plus preferences"
// @Success 200 {object} models.RecommendResponse
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 502
// @Security ApiKeyAuth
// @Router /recommend/address [post]
func (h *Handler) RecommendByAddress(c *gin.Context) {
	var req models.RecommendAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	resp, err := h.service.RecommendByAddress(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geocode.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, weather.ErrAllProvidersFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
