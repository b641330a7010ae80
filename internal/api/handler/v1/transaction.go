package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/request"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1/response"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

type TransactionService interface {
	GetMemberTransactions(ctx context.Context, memberID uint) ([]domain.Transaction, error)
	CreateDepositIntent(ctx context.Context, member domain.Member, amount decimal.Decimal) (domain.Transaction, string, error)
	ConfirmDeposit(ctx context.Context, member domain.Member, intentID string) (domain.Transaction, error)
}

type TransactionHandler struct {
	svc  TransactionService
	mSvc MemberService
}

func NewTransactionHandler(svc TransactionService, mSvc MemberService) *TransactionHandler {
	return &TransactionHandler{
		svc:  svc,
		mSvc: mSvc,
	}
}

// HandleGetTransactions godoc
// @Summary      List the authenticated member's transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   domain.Transaction
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /transactions [get]
// @Security BearerAuth
func (h *TransactionHandler) HandleGetTransactions(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	transactions, err := h.svc.GetMemberTransactions(ctx.Request.Context(), member.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTransactions -> h.svc.GetMemberTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleCreateDepositIntent godoc
// @Summary      Start a deposit
// @Description  Creates a Stripe payment intent and a pending deposit transaction.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.DepositRequest true "request body"
// @Success      201  {object}  response.PaymentIntentResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/intent [post]
// @Security BearerAuth
func (h *TransactionHandler) HandleCreateDepositIntent(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transaction, clientSecret, err := h.svc.CreateDepositIntent(ctx.Request.Context(), member, req.Amount)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateDepositIntent -> h.svc.CreateDepositIntent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.PaymentIntentResponse{
		Transaction:  transaction,
		ClientSecret: clientSecret,
	})
}

// HandleConfirmDeposit godoc
// @Summary      Confirm a deposit
// @Description  Verifies the payment intent succeeded and credits the member account.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmDepositRequest true "request body"
// @Success      200  {object}  domain.Transaction
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/confirm [post]
// @Security BearerAuth
func (h *TransactionHandler) HandleConfirmDeposit(ctx *gin.Context) {
	member, respErr := getMemberFromContext(ctx, h.mSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ConfirmDepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transaction, err := h.svc.ConfirmDeposit(ctx.Request.Context(), member, req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("transaction", "paymentIntentID", req.PaymentIntentID))
		case errors.Is(err, service.ErrTransactionWrongOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrTransactionWrongOwner))
		case errors.Is(err, service.ErrPaymentNotSucceeded):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPaymentNotSucceeded))
		default:
			err = fmt.Errorf("v1.HandleConfirmDeposit -> h.svc.ConfirmDeposit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, transaction)
}
