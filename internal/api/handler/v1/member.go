package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/request"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{
		svc: svc,
	}
}

// HandleGetCurrentMember godoc
// @Summary      Get the authenticated member
// @Tags         members
// @Produce      json
// @Success      200  {object}  domain.Member
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/current [get]
// @Security BearerAuth
func (h *MemberHandler) HandleGetCurrentMember(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleUpdateCurrentMember godoc
// @Summary      Update the authenticated member's profile
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateProfileRequest true "request body"
// @Success      200  {object}  domain.Member
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/current [put]
// @Security BearerAuth
func (h *MemberHandler) HandleUpdateCurrentMember(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProfile(ctx.Request.Context(), member.ID, req.FirstName, req.LastName, req.Friends)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateCurrentMember -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetMembers godoc
// @Summary      List all members
// @Description  Admin only.
// @Tags         members
// @Produce      json
// @Success      200  {array}   domain.Member
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members [get]
// @Security BearerAuth
func (h *MemberHandler) HandleGetMembers(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if member.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("member %v is not an admin", member.ID)))
		return
	}

	members, err := h.svc.GetAllMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMembers -> h.svc.GetAllMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, members)
}
