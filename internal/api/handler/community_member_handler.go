package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

type createCommunityMemberRequest struct {
	CommunityID int `json:"communityId" validate:"required,gt=0"`
	UserID      int `json:"userId"      validate:"required,gt=0"`
}

// CommunityMemberHandler serves membership records. Members are added and
// removed, never updated.
type CommunityMemberHandler struct {
	members ports.CommunityMemberRepository
}

func NewCommunityMemberHandler(members ports.CommunityMemberRepository) *CommunityMemberHandler {
	return &CommunityMemberHandler{members: members}
}

// List returns memberships filtered by communityId or userId. A filter is
// mandatory.
//
// @Summary      List community members
// @Tags         community-members
// @Produce      json
// @Security     BearerAuth
// @Param        communityId  query     int  false  "Filter by community"
// @Param        userId       query     int  false  "Filter by user"
// @Success      200  {array}   domain.CommunityMember
// @Failure      400  {object}  errorResponse
// @Router       /api/community-members [get]
func (h *CommunityMemberHandler) List(c echo.Context) error {
	communityID, err := queryInt(c, "communityId")
	if err != nil {
		return err
	}
	userID, err := queryInt(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	switch {
	case communityID > 0:
		members, err := h.members.ListByCommunity(ctx, communityID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, members)
	case userID > 0:
		members, err := h.members.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, members)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Either communityId or userId query parameter is required")
	}
}

// Create adds a user to a community. Duplicate memberships are permitted.
//
// @Summary      Add community member
// @Tags         community-members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommunityMemberRequest  true  "Membership"
// @Success      201   {object}  domain.CommunityMember
// @Failure      400   {object}  errorResponse
// @Router       /api/community-members [post]
func (h *CommunityMemberHandler) Create(c echo.Context) error {
	var req createCommunityMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.members.Create(c.Request().Context(), &domain.CommunityMember{
		CommunityID: req.CommunityID,
		UserID:      req.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// Delete removes a membership.
//
// @Summary      Remove community member
// @Tags         community-members
// @Security     BearerAuth
// @Param        id  path  int  true  "Membership id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/community-members/{id} [delete]
func (h *CommunityMemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.members.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
