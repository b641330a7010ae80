package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

type StandingsService interface {
	UpdateStandings(ctx context.Context) error
}

type StandingsHandler struct {
	svc  StandingsService
	mSvc MemberService
}

func NewStandingsHandler(svc StandingsService, mSvc MemberService) *StandingsHandler {
	return &StandingsHandler{
		svc:  svc,
		mSvc: mSvc,
	}
}

// HandleUpdateStandings godoc
// @Summary      Recompute every tour's standings
// @Description  Admin only. The scheduler runs the same routine on a timer.
// @Tags         cron
// @Produce      json
// @Success      200  {object}  response.StandingsUpdateResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /cron/standings [post]
// @Security BearerAuth
func (h *StandingsHandler) HandleUpdateStandings(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if member.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("member %v is not an admin", member.ID)))
		return
	}

	if err := h.svc.UpdateStandings(ctx.Request.Context()); err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStandings -> h.svc.UpdateStandings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StandingsUpdateResponse{
		Message: "standings updated",
	})
}
