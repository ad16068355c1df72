package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/api/metrics"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

type createRacePackRequest struct {
	EventID             int    `json:"eventId"             validate:"required,gt=0"`
	Name                string `json:"name"                validate:"required"`
	SKU                 string `json:"sku"                 validate:"required"`
	Category            string `json:"category"            validate:"required"`
	StockQuantity       int    `json:"stockQuantity"       validate:"required,gte=0"`
	DistributedQuantity int    `json:"distributedQuantity" validate:"omitempty,gte=0"`
}

type updateRacePackRequest struct {
	Name                *string `json:"name"`
	SKU                 *string `json:"sku"`
	Category            *string `json:"category"`
	StockQuantity       *int    `json:"stockQuantity"       validate:"omitempty,gte=0"`
	DistributedQuantity *int    `json:"distributedQuantity" validate:"omitempty,gte=0"`
}

type distributeRacePackRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// RacePackHandler routes inventory reads to the repository and writes
// through the accounting service so the stock bound holds.
type RacePackHandler struct {
	racePackService ports.RacePackService
	racePacks       ports.RacePackRepository
}

func NewRacePackHandler(racePackService ports.RacePackService, racePacks ports.RacePackRepository) *RacePackHandler {
	return &RacePackHandler{racePackService: racePackService, racePacks: racePacks}
}

// List returns the race packs for an event. The eventId filter is mandatory.
//
// @Summary      List race packs
// @Tags         race-packs
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  query     int  true  "Event id"
// @Success      200  {array}   domain.RacePack
// @Failure      400  {object}  errorResponse
// @Router       /api/race-packs [get]
func (h *RacePackHandler) List(c echo.Context) error {
	eventID, err := queryInt(c, "eventId")
	if err != nil {
		return err
	}
	if eventID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "eventId query parameter is required")
	}

	packs, err := h.racePacks.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packs)
}

// Get returns a single race pack.
//
// @Summary      Get race pack
// @Tags         race-packs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Race pack id"
// @Success      200  {object}  domain.RacePack
// @Failure      404  {object}  errorResponse
// @Router       /api/race-packs/{id} [get]
func (h *RacePackHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	pack, err := h.racePacks.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pack)
}

// Create stores a new race pack line item.
//
// @Summary      Create race pack
// @Tags         race-packs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRacePackRequest  true  "New race pack"
// @Success      201   {object}  domain.RacePack
// @Failure      400   {object}  errorResponse
// @Router       /api/race-packs [post]
func (h *RacePackHandler) Create(c echo.Context) error {
	var req createRacePackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pack, err := h.racePackService.Create(c.Request().Context(), ports.CreateRacePackInput{
		EventID:             req.EventID,
		Name:                req.Name,
		SKU:                 req.SKU,
		Category:            req.Category,
		StockQuantity:       req.StockQuantity,
		DistributedQuantity: req.DistributedQuantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pack)
}

// Update applies a partial update; combinations that would overdraw stock
// are rejected.
//
// @Summary      Update race pack
// @Tags         race-packs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Race pack id"
// @Param        body  body      updateRacePackRequest  true  "Changed fields"
// @Success      200   {object}  domain.RacePack
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/race-packs/{id} [patch]
func (h *RacePackHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRacePackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pack, err := h.racePackService.Update(c.Request().Context(), id, ports.RacePackUpdate{
		Name:                req.Name,
		SKU:                 req.SKU,
		Category:            req.Category,
		StockQuantity:       req.StockQuantity,
		DistributedQuantity: req.DistributedQuantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pack)
}

// Distribute hands out units from a race pack's stock.
//
// @Summary      Distribute race pack units
// @Tags         race-packs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Race pack id"
// @Param        body  body      distributeRacePackRequest  true  "Units to hand out"
// @Success      200   {object}  domain.RacePack
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/race-packs/{id}/distribute [post]
func (h *RacePackHandler) Distribute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req distributeRacePackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pack, err := h.racePackService.Distribute(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return err
	}

	metrics.RacePacksDistributedTotal.Add(float64(req.Quantity))
	return c.JSON(http.StatusOK, pack)
}

// Delete removes a race pack line item.
//
// @Summary      Delete race pack
// @Tags         race-packs
// @Security     BearerAuth
// @Param        id  path  int  true  "Race pack id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/race-packs/{id} [delete]
func (h *RacePackHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.racePacks.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
