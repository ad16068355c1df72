package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/api/metrics"
	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// RegistrationHandler routes registration reads to the repository and
// creation through the policy service.
type RegistrationHandler struct {
	registrationService ports.RegistrationService
	registrations       ports.RegistrationRepository
}

func NewRegistrationHandler(
	registrationService ports.RegistrationService,
	registrations ports.RegistrationRepository,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		registrations:       registrations,
	}
}

// List returns registrations filtered by eventId or userId. A filter is
// mandatory; listing every registration in the system is not supported.
//
// @Summary      List registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  query     int  false  "Filter by event"
// @Param        userId   query     int  false  "Filter by user"
// @Success      200  {array}   domain.Registration
// @Failure      400  {object}  errorResponse
// @Router       /api/registrations [get]
func (h *RegistrationHandler) List(c echo.Context) error {
	eventID, err := queryInt(c, "eventId")
	if err != nil {
		return err
	}
	userID, err := queryInt(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	switch {
	case eventID > 0:
		regs, err := h.registrations.ListByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, regs)
	case userID > 0:
		regs, err := h.registrations.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, regs)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Either eventId or userId query parameter is required")
	}
}

// Get returns a single registration.
//
// @Summary      Get registration
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Registration id"
// @Success      200  {object}  domain.Registration
// @Failure      404  {object}  errorResponse
// @Router       /api/registrations/{id} [get]
func (h *RegistrationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reg, err := h.registrations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reg)
}

// Create runs the registration policy: unique per (event, user), event must
// exist with open registration, capacity must not be exceeded.
//
// @Summary      Register for an event
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRegistrationRequest  true  "Registration"
// @Success      201   {object}  domain.Registration
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/registrations [post]
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req createRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reg, err := h.registrationService.Register(c.Request().Context(), ports.CreateRegistrationInput{
		EventID:        req.EventID,
		UserID:         req.UserID,
		Status:         domain.RegistrationStatus(req.Status),
		BibNumber:      req.BibNumber,
		Category:       req.Category,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.RegistrationsRejectedTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	metrics.RegistrationsCreatedTotal.WithLabelValues(strconv.Itoa(reg.EventID)).Inc()
	return c.JSON(http.StatusCreated, reg)
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrDuplicateRegistration:
		return "duplicate"
	case domain.ErrEventNotFound:
		return "event_not_found"
	case domain.ErrRegistrationClosed:
		return "closed"
	case domain.ErrCapacityExceeded:
		return "capacity"
	}
	return ""
}

// Update applies a partial update to a registration.
//
// @Summary      Update registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Registration id"
// @Param        body  body      updateRegistrationRequest  true  "Changed fields"
// @Success      200   {object}  domain.Registration
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/registrations/{id} [patch]
func (h *RegistrationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.RegistrationUpdate{
		BibNumber:      req.BibNumber,
		Category:       req.Category,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Status != nil {
		status := domain.RegistrationStatus(*req.Status)
		upd.Status = &status
	}

	reg, err := h.registrations.Update(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reg)
}

// Delete removes a registration.
//
// @Summary      Delete registration
// @Tags         registrations
// @Security     BearerAuth
// @Param        id  path  int  true  "Registration id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/registrations/{id} [delete]
func (h *RegistrationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.registrations.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
