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

type TourService interface {
	GetCurrentTours(ctx context.Context) ([]domain.Tour, error)
	GetStandings(ctx context.Context, tourID uint) ([]domain.TourCard, error)
	RegisterTourCard(ctx context.Context, member domain.Member, tourID uint, displayName string) (domain.TourCard, error)
	GetCurrentTourCard(ctx context.Context, memberID uint) (domain.TourCard, error)
}

type TourHandler struct {
	svc  TourService
	mSvc MemberService
}

func NewTourHandler(svc TourService, mSvc MemberService) *TourHandler {
	return &TourHandler{
		svc:  svc,
		mSvc: mSvc,
	}
}

// HandleGetTours godoc
// @Summary      List the tours of the current season
// @Tags         tours
// @Produce      json
// @Success      200  {array}   domain.Tour
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tours/all [get]
func (h *TourHandler) HandleGetTours(ctx *gin.Context) {
	tours, err := h.svc.GetCurrentTours(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
			return
		}

		err = fmt.Errorf("v1.HandleGetTours -> h.svc.GetCurrentTours -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tours)
}

// HandleGetStandings godoc
// @Summary      Get a tour's standings
// @Tags         tours
// @Produce      json
// @Param        tourID  path  int  true  "Tour ID"
// @Success      200  {array}   domain.TourCard
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tours/{tourID}/standings [get]
func (h *TourHandler) HandleGetStandings(ctx *gin.Context) {
	tourID, err := strconv.ParseUint(ctx.Param("tourID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tour ID: %w", err)))
		return
	}

	cards, err := h.svc.GetStandings(ctx.Request.Context(), uint(tourID))
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tour", "ID", tourID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStandings -> h.svc.GetStandings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

// HandleRegisterTourCard godoc
// @Summary      Register the authenticated member on a tour
// @Description  Charges the tour's buy-in against the member account.
// @Tags         tour-cards
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterTourCardRequest true "request body"
// @Success      201  {object}  domain.TourCard
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tour-cards [post]
// @Security BearerAuth
func (h *TourHandler) HandleRegisterTourCard(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterTourCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	card, err := h.svc.RegisterTourCard(ctx.Request.Context(), member, req.TourID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tour", "ID", req.TourID))
		case errors.Is(err, service.ErrTourCardExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTourCardExists))
		case errors.Is(err, service.ErrWrongSeason):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrWrongSeason))
		case errors.Is(err, service.ErrSeasonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
		default:
			err = fmt.Errorf("v1.HandleRegisterTourCard -> h.svc.RegisterTourCard -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, card)
}

// HandleGetCurrentTourCard godoc
// @Summary      Get the authenticated member's tour card for the current season
// @Tags         tour-cards
// @Produce      json
// @Success      200  {object}  domain.TourCard
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tour-cards/current [get]
// @Security BearerAuth
func (h *TourHandler) HandleGetCurrentTourCard(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	card, err := h.svc.GetCurrentTourCard(ctx.Request.Context(), member.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourCardNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tour card", "memberID", member.ID))
		case errors.Is(err, service.ErrSeasonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("season", "year", "current"))
		default:
			err = fmt.Errorf("v1.HandleGetCurrentTourCard -> h.svc.GetCurrentTourCard -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, card)
}
