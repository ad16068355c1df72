package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// EventHandler serves plain CRUD over events; no business rules apply here
// beyond input validation, so it talks to the repository directly.
type EventHandler struct {
	events ports.EventRepository
}

func NewEventHandler(events ports.EventRepository) *EventHandler {
	return &EventHandler{events: events}
}

// List returns events, optionally filtered by organizerId or status. The
// organizer filter wins when both are present, mirroring the original API.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        organizerId  query     int     false  "Filter by organizer"
// @Param        status       query     string  false  "Filter by status"
// @Success      200  {array}   domain.Event
// @Failure      400  {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	organizerID, err := queryInt(c, "organizerId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	switch {
	case organizerID > 0:
		events, err := h.events.ListByOrganizer(ctx, organizerID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	case c.QueryParam("status") != "":
		events, err := h.events.ListByStatus(ctx, domain.EventStatus(c.QueryParam("status")))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	default:
		events, err := h.events.List(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	}
}

// Get returns a single event.
//
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	event, err := h.events.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create stores a new event.
//
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "New event"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.events.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update applies a partial update; absent fields keep their stored values.
//
// @Summary      Update event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Event id"
// @Param        body  body      updateEventRequest  true  "Changed fields"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/events/{id} [patch]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.EventUpdate{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Location:         req.Location,
		Category:         req.Category,
		Capacity:         req.Capacity,
		Price:            req.Price,
		Image:            req.Image,
		OrganizerID:      req.OrganizerID,
		RegistrationOpen: req.RegistrationOpen,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		upd.Status = &status
	}

	event, err := h.events.Update(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes an event. Registrations referencing it are left in place;
// the store does not cascade.
//
// @Summary      Delete event
// @Tags         events
// @Security     BearerAuth
// @Param        id  path  int  true  "Event id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
