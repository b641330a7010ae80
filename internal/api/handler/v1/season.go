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

type SeasonService interface {
	GetCurrentSeason(ctx context.Context) (domain.Season, error)
	GetAllSeasons(ctx context.Context) ([]domain.Season, error)
}

type SeasonHandler struct {
	svc SeasonService
}

func NewSeasonHandler(svc SeasonService) *SeasonHandler {
	return &SeasonHandler{
		svc: svc,
	}
}

// HandleGetCurrentSeason godoc
// @Summary      Get the season for the current calendar year
// @Tags         seasons
// @Produce      json
// @Success      200  {object}  domain.Season
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /seasons/current [get]
func (h *SeasonHandler) HandleGetCurrentSeason(ctx *gin.Context) {
	season, err := h.svc.GetCurrentSeason(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentSeason -> h.svc.GetCurrentSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, season)
}

// HandleGetSeasons godoc
// @Summary      List all seasons
// @Tags         seasons
// @Produce      json
// @Success      200  {array}   domain.Season
// @Failure      500  {object}  response.Err
// @Router       /seasons [get]
func (h *SeasonHandler) HandleGetSeasons(ctx *gin.Context) {
	seasons, err := h.svc.GetAllSeasons(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSeasons -> h.svc.GetAllSeasons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, seasons)
}
