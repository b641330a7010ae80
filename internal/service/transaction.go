package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var (
	ErrTransactionNotFound   = repository.ErrTransactionNotFound
	ErrInvalidTransaction    = errors.New("invalid transaction")
	ErrPaymentNotSucceeded   = errors.New("payment has not succeeded")
	ErrTransactionWrongOwner = errors.New("transaction belongs to another member")
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Transaction, error)
	FindByMemberID(ctx context.Context, memberID uint) ([]domain.Transaction, error)
}

type AccountAdjuster interface {
	AdjustAccount(ctx context.Context, id uint, amount decimal.Decimal) error
}

type ReceiptSender interface {
	SendReceipt(member domain.Member, amount decimal.Decimal, description string) error
}

type TransactionService struct {
	repo     TransactionRepository
	accounts AccountAdjuster
	seasons  CurrentSeasonProvider
	payments PaymentProvider
	email    ReceiptSender
}

func NewTransactionService(
	repo TransactionRepository,
	accounts AccountAdjuster,
	seasons CurrentSeasonProvider,
	payments PaymentProvider,
	email ReceiptSender,
) *TransactionService {
	return &TransactionService{
		repo:     repo,
		accounts: accounts,
		seasons:  seasons,
		payments: payments,
		email:    email,
	}
}

func (s *TransactionService) GetMemberTransactions(ctx context.Context, memberID uint) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMemberID -> %w", err)
	}

	return transactions, nil
}

// CreateDepositIntent opens a Stripe PaymentIntent for an account
// deposit and records the pending transaction carrying its id. The
// returned client secret completes the payment in the browser.
func (s *TransactionService) CreateDepositIntent(ctx context.Context, member domain.Member, amount decimal.Decimal) (domain.Transaction, string, error) {
	transaction := domain.Transaction{
		MemberID:    member.ID,
		Amount:      amount,
		Type:        domain.TransactionDeposit,
		Status:      domain.TransactionPending,
		Description: "Account deposit",
	}
	if !transaction.IsValid() {
		return domain.Transaction{}, "", ErrInvalidTransaction
	}

	if season, err := s.seasons.GetCurrentSeason(ctx); err == nil {
		transaction.SeasonID = season.ID
	}

	intentID, clientSecret, err := s.payments.CreateIntent(amount, member.ID)
	if err != nil {
		return domain.Transaction{}, "", fmt.Errorf("s.payments.CreateIntent -> %w", err)
	}
	transaction.PaymentIntentID = intentID

	created, err := s.repo.Create(ctx, transaction)
	if err != nil {
		return domain.Transaction{}, "", fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, clientSecret, nil
}

// ConfirmDeposit verifies the PaymentIntent succeeded, completes the
// pending transaction and credits the member's account.
func (s *TransactionService) ConfirmDeposit(ctx context.Context, member domain.Member, intentID string) (domain.Transaction, error) {
	transaction, err := s.repo.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.FindByPaymentIntentID -> %w", err)
	}
	if transaction.MemberID != member.ID {
		return domain.Transaction{}, ErrTransactionWrongOwner
	}
	if transaction.Status != domain.TransactionPending {
		return transaction, nil
	}

	succeeded, err := s.payments.IntentSucceeded(intentID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.payments.IntentSucceeded -> %w", err)
	}
	if !succeeded {
		return domain.Transaction{}, ErrPaymentNotSucceeded
	}

	transaction.Complete()
	updated, err := s.repo.Update(ctx, transaction)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if err = s.accounts.AdjustAccount(ctx, member.ID, transaction.Amount); err != nil {
		return domain.Transaction{}, fmt.Errorf("s.accounts.AdjustAccount -> %w", err)
	}

	if s.email != nil {
		if err = s.email.SendReceipt(member, transaction.Amount, transaction.Description); err != nil {
			zap.L().Warn("failed to send receipt", zap.Uint("member_id", member.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// ChargeTourCardFee debits a tour's buy-in from the member account and
// records the completed fee transaction. A zero buy-in records nothing.
func (s *TransactionService) ChargeTourCardFee(ctx context.Context, member domain.Member, tour domain.Tour) (domain.Transaction, error) {
	if tour.BuyIn.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, nil
	}

	if err := s.accounts.AdjustAccount(ctx, member.ID, tour.BuyIn.Neg()); err != nil {
		return domain.Transaction{}, fmt.Errorf("s.accounts.AdjustAccount -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Transaction{
		MemberID:    member.ID,
		SeasonID:    tour.SeasonID,
		Amount:      tour.BuyIn,
		Type:        domain.TransactionTourCardFee,
		Status:      domain.TransactionCompleted,
		Description: fmt.Sprintf("%v tour card buy-in", tour.Name),
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
