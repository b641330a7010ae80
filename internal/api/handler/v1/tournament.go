package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

type TournamentService interface {
	GetTournament(ctx context.Context, id uint) (domain.Tournament, error)
	GetSchedule(ctx context.Context) ([]domain.Tournament, error)
}

type TournamentHandler struct {
	svc TournamentService
}

func NewTournamentHandler(svc TournamentService) *TournamentHandler {
	return &TournamentHandler{
		svc: svc,
	}
}

// HandleGetSchedule godoc
// @Summary      List the current season's tournaments in start-date order
// @Tags         tournaments
// @Produce      json
// @Success      200  {array}   domain.Tournament
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/schedule [get]
func (h *TournamentHandler) HandleGetSchedule(ctx *gin.Context) {
	tournaments, err := h.svc.GetSchedule(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
			return
		}

		err = fmt.Errorf("v1.HandleGetSchedule -> h.svc.GetSchedule -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

// HandleGetTournament godoc
// @Summary      Get a tournament by ID
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path  int  true  "Tournament ID"
// @Success      200  {object}  domain.Tournament
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID} [get]
func (h *TournamentHandler) HandleGetTournament(ctx *gin.Context) {
	tournamentID, err := strconv.ParseUint(ctx.Param("tournamentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tournament ID: %w", err)))
		return
	}

	tournament, err := h.svc.GetTournament(ctx.Request.Context(), uint(tournamentID))
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", tournamentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTournament -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournament)
}
