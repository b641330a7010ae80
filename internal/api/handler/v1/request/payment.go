package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNonPositiveAmount = errors.New("amount must be greater than zero")

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (req *DepositRequest) Validate() error {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return errNonPositiveAmount
	}

	return nil
}

type ConfirmDepositRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

func (req *ConfirmDepositRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentIntentID, validation.Required),
	)
}
