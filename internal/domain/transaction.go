package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTourCardFee        TransactionType = "TourCardFee"
	TransactionTournamentWinnings TransactionType = "TournamentWinnings"
	TransactionDeposit            TransactionType = "Deposit"
	TransactionWithdrawal         TransactionType = "Withdrawal"
	TransactionPayment            TransactionType = "Payment"
	TransactionCharityDonation    TransactionType = "CharityDonation"
)

const (
	TransactionPending   = "Pending"
	TransactionCompleted = "Completed"
	TransactionFailed    = "Failed"
)

type Transaction struct {
	ID              uint            `json:"id"`
	MemberID        uint            `json:"member_id"`
	SeasonID        uint            `json:"season_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (t *Transaction) Complete() {
	if t.Status == TransactionPending {
		t.Status = TransactionCompleted
	}
}

func (t *Transaction) Fail() {
	if t.Status == TransactionPending {
		t.Status = TransactionFailed
	}
}

// IsValid checks the bare shape of a transaction before it is persisted.
func (t *Transaction) IsValid() bool {
	if t.MemberID == 0 {
		return false
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return false
	}

	return true
}
