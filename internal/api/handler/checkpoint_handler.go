package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

type createCheckpointRequest struct {
	RegistrationID     int        `json:"registrationId" validate:"required,gt=0"`
	CheckpointName     string     `json:"checkpointName" validate:"required"`
	CheckpointDistance *float64   `json:"checkpointDistance" validate:"omitempty,gt=0"`
	Timestamp          *time.Time `json:"timestamp"`
	Status             string     `json:"status" validate:"required,oneof=active finished delayed DNF"`
}

type updateCheckpointRequest struct {
	CheckpointName     *string  `json:"checkpointName"`
	CheckpointDistance *float64 `json:"checkpointDistance" validate:"omitempty,gt=0"`
	Status             *string  `json:"status" validate:"omitempty,oneof=active finished delayed DNF"`
}

// CheckpointHandler serves participant checkpoint tracking records.
type CheckpointHandler struct {
	checkpoints ports.CheckpointRepository
}

func NewCheckpointHandler(checkpoints ports.CheckpointRepository) *CheckpointHandler {
	return &CheckpointHandler{checkpoints: checkpoints}
}

// List returns the checkpoints for one registration. The registrationId
// filter is mandatory.
//
// @Summary      List participant checkpoints
// @Tags         participant-checkpoints
// @Produce      json
// @Security     BearerAuth
// @Param        registrationId  query     int  true  "Registration id"
// @Success      200  {array}   domain.ParticipantCheckpoint
// @Failure      400  {object}  errorResponse
// @Router       /api/participant-checkpoints [get]
func (h *CheckpointHandler) List(c echo.Context) error {
	registrationID, err := queryInt(c, "registrationId")
	if err != nil {
		return err
	}
	if registrationID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "registrationId query parameter is required")
	}

	checkpoints, err := h.checkpoints.ListByRegistration(c.Request().Context(), registrationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkpoints)
}

// Create records a participant passing a checkpoint. The timestamp defaults
// to now when omitted.
//
// @Summary      Record checkpoint
// @Tags         participant-checkpoints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCheckpointRequest  true  "Checkpoint"
// @Success      201   {object}  domain.ParticipantCheckpoint
// @Failure      400   {object}  errorResponse
// @Router       /api/participant-checkpoints [post]
func (h *CheckpointHandler) Create(c echo.Context) error {
	var req createCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	checkpoint := &domain.ParticipantCheckpoint{
		RegistrationID:     req.RegistrationID,
		CheckpointName:     req.CheckpointName,
		CheckpointDistance: req.CheckpointDistance,
		Status:             domain.CheckpointStatus(req.Status),
	}
	if req.Timestamp != nil {
		checkpoint.Timestamp = *req.Timestamp
	}

	created, err := h.checkpoints.Create(c.Request().Context(), checkpoint)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update to a checkpoint record.
//
// @Summary      Update checkpoint
// @Tags         participant-checkpoints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Checkpoint id"
// @Param        body  body      updateCheckpointRequest  true  "Changed fields"
// @Success      200   {object}  domain.ParticipantCheckpoint
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/participant-checkpoints/{id} [patch]
func (h *CheckpointHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := ports.CheckpointUpdate{
		CheckpointName:     req.CheckpointName,
		CheckpointDistance: req.CheckpointDistance,
	}
	if req.Status != nil {
		status := domain.CheckpointStatus(*req.Status)
		upd.Status = &status
	}

	checkpoint, err := h.checkpoints.Update(c.Request().Context(), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkpoint)
}
