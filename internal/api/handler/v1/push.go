package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/request"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

type PushService interface {
	Subscribe(ctx context.Context, sub domain.PushSubscription) (domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, endpoint string) error
}

type PushHandler struct {
	svc  PushService
	mSvc MemberService
}

func NewPushHandler(svc PushService, mSvc MemberService) *PushHandler {
	return &PushHandler{
		svc:  svc,
		mSvc: mSvc,
	}
}

// HandleSubscribe godoc
// @Summary      Register a browser push subscription
// @Tags         push
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubscribeRequest true "request body"
// @Success      201  {object}  domain.PushSubscription
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /push/subscribe [post]
// @Security BearerAuth
func (h *PushHandler) HandleSubscribe(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sub, err := h.svc.Subscribe(ctx.Request.Context(), domain.PushSubscription{
		MemberID: member.ID,
		Endpoint: req.Endpoint,
		P256dh:   req.P256dh,
		Auth:     req.Auth,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleSubscribe -> h.svc.Subscribe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, sub)
}

// HandleUnsubscribe godoc
// @Summary      Remove a browser push subscription
// @Description  Removing an endpoint that is already gone still succeeds.
// @Tags         push
// @Accept       json
// @Produce      json
// @Param        request  body      request.UnsubscribeRequest true "request body"
// @Success      204  {object}  nil
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /push/unsubscribe [post]
// @Security BearerAuth
func (h *PushHandler) HandleUnsubscribe(ctx *gin.Context) {
	if _, respErr := getMemberFromContext(ctx, h.mSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UnsubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.Unsubscribe(ctx.Request.Context(), req.Endpoint); err != nil {
		err = fmt.Errorf("v1.HandleUnsubscribe -> h.svc.Unsubscribe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
