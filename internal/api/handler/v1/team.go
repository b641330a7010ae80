package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/request"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

type TeamService interface {
	SubmitPicks(ctx context.Context, card domain.TourCard, tournamentID uint, golferIDs []int64) (domain.Team, error)
	GetLeaderboard(ctx context.Context, tournamentID uint) ([]domain.Team, error)
	GetTeam(ctx context.Context, tourCardID, tournamentID uint) (domain.Team, error)
}

type CurrentTourCardProvider interface {
	GetCurrentTourCard(ctx context.Context, memberID uint) (domain.TourCard, error)
}

type TeamHandler struct {
	svc   TeamService
	cards CurrentTourCardProvider
	mSvc  MemberService
}

func NewTeamHandler(svc TeamService, cards CurrentTourCardProvider, mSvc MemberService) *TeamHandler {
	return &TeamHandler{
		svc:   svc,
		cards: cards,
		mSvc:  mSvc,
	}
}

// HandleSubmitPicks godoc
// @Summary      Submit the member's golfer picks for a tournament
// @Description  Creates the team, or replaces its golfer list before tee-off.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        tournamentID  path  int  true  "Tournament ID"
// @Param        request  body      request.SubmitPicksRequest true "request body"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/teams [post]
// @Security BearerAuth
func (h *TeamHandler) HandleSubmitPicks(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tournamentID, err := strconv.ParseUint(ctx.Param("tournamentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tournament ID: %w", err)))
		return
	}

	var req request.SubmitPicksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	card, err := h.cards.GetCurrentTourCard(ctx.Request.Context(), member.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourCardNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tour card", "memberID", member.ID))
		case errors.Is(err, service.ErrSeasonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
		default:
			err = fmt.Errorf("v1.HandleSubmitPicks -> h.cards.GetCurrentTourCard -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	team, err := h.svc.SubmitPicks(ctx.Request.Context(), card, uint(tournamentID), req.GolferIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
		case errors.Is(err, service.ErrTournamentStarted),
			errors.Is(err, service.ErrWrongGolferCount),
			errors.Is(err, service.ErrDuplicateGolfer):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSubmitPicks -> h.svc.SubmitPicks -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleGetLeaderboard godoc
// @Summary      List every team entered in a tournament
// @Tags         teams
// @Produce      json
// @Param        tournamentID  path  int  true  "Tournament ID"
// @Success      200  {array}   domain.Team
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/teams [get]
func (h *TeamHandler) HandleGetLeaderboard(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournamentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tournament ID: %w", err)))
		return
	}

	teams, err := h.svc.GetLeaderboard(ctx.Request.Context(), uint(tournamentID))
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetLeaderboard -> h.svc.GetLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetCurrentTeam godoc
// @Summary      Get the member's team for a tournament
// @Tags         teams
// @Produce      json
// @Param        tournamentID  path  int  true  "Tournament ID"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/teams/current [get]
// @Security BearerAuth
func (h *TeamHandler) HandleGetCurrentTeam(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tournamentID, err := strconv.ParseUint(ctx.Param("tournamentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tournament ID: %w", err)))
		return
	}

	card, err := h.cards.GetCurrentTourCard(ctx.Request.Context(), member.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourCardNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tour card", "memberID", member.ID))
		case errors.Is(err, service.ErrSeasonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
		default:
			err = fmt.Errorf("v1.HandleGetCurrentTeam -> h.cards.GetCurrentTourCard -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	team, err := h.svc.GetTeam(ctx.Request.Context(), card.ID, uint(tournamentID))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "tournamentID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentTeam -> h.svc.GetTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, team)
}
