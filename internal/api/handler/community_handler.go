package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

type createCommunityRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       *string `json:"image"`
	ManagerID   int     `json:"managerId"   validate:"required,gt=0"`
}

type updateCommunityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ManagerID   *int    `json:"managerId" validate:"omitempty,gt=0"`
}

// CommunityHandler serves plain CRUD over communities.
type CommunityHandler struct {
	communities ports.CommunityRepository
}

func NewCommunityHandler(communities ports.CommunityRepository) *CommunityHandler {
	return &CommunityHandler{communities: communities}
}

// List returns communities, optionally filtered by managerId.
//
// @Summary      List communities
// @Tags         communities
// @Produce      json
// @Security     BearerAuth
// @Param        managerId  query     int  false  "Filter by manager"
// @Success      200  {array}   domain.Community
// @Router       /api/communities [get]
func (h *CommunityHandler) List(c echo.Context) error {
	managerID, err := queryInt(c, "managerId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if managerID > 0 {
		communities, err := h.communities.ListByManager(ctx, managerID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, communities)
	}

	communities, err := h.communities.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, communities)
}

// Get returns a single community.
//
// @Summary      Get community
// @Tags         communities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Community id"
// @Success      200  {object}  domain.Community
// @Failure      404  {object}  errorResponse
// @Router       /api/communities/{id} [get]
func (h *CommunityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	community, err := h.communities.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, community)
}

// Create stores a new community.
//
// @Summary      Create community
// @Tags         communities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommunityRequest  true  "New community"
// @Success      201   {object}  domain.Community
// @Failure      400   {object}  errorResponse
// @Router       /api/communities [post]
func (h *CommunityHandler) Create(c echo.Context) error {
	var req createCommunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	community, err := h.communities.Create(c.Request().Context(), &domain.Community{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, community)
}

// Update applies a partial update.
//
// @Summary      Update community
// @Tags         communities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Community id"
// @Param        body  body      updateCommunityRequest  true  "Changed fields"
// @Success      200   {object}  domain.Community
// @Failure      404   {object}  errorResponse
// @Router       /api/communities/{id} [patch]
func (h *CommunityHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	community, err := h.communities.Update(c.Request().Context(), id, ports.CommunityUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, community)
}

// Delete removes a community. Memberships are left behind; there is no
// cascade.
//
// @Summary      Delete community
// @Tags         communities
// @Security     BearerAuth
// @Param        id  path  int  true  "Community id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/communities/{id} [delete]
func (h *CommunityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.communities.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
