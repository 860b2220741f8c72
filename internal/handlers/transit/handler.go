package transit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/get2wurk/get2wurk-api/internal/models"
	transitSvc "github.com/get2wurk/get2wurk-api/internal/services/transit"
)

const timeoutDuration = 10 * time.Second

type alertsGetter interface {
	Alerts(ctx context.Context, route string) ([]models.TransitAlert, error)
}

type Handler struct {
	service alertsGetter
}

func NewHandler(svc alertsGetter) *Handler {
	return &Handler{service: svc}
}

// GetAlerts
// @Summary MTA service alerts
// @Description Returns current subway service alerts, optionally filtered to one route
// @Tags transit
// @Produce json
// @Param line query string false "Subway route (e.g. L, A, 7)"
// @Success 200 {array} models.TransitAlert
// @Failure 400
// @Failure 401
// @Failure 502
// @Failure 503
// @Security ApiKeyAuth
// @Router /transit/alerts [get]
func (h *Handler) GetAlerts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	alerts, err := h.service.Alerts(ctx, c.Query("line"))
	if err != nil {
		if errors.Is(err, transitSvc.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transit alerts are not configured"})
			return
		}
		if errors.Is(err, transitSvc.ErrUnknownRoute) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
