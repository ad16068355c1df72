package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns active event, registration, community, and revenue
// totals.
//
// @Summary      Dashboard stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Router       /api/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
