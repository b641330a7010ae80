package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type fakeTransactionRepo struct {
	transactions []domain.Transaction
	nextID       uint
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	transaction.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, transaction)

	return transaction, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	for i := range r.transactions {
		if r.transactions[i].ID == transaction.ID {
			r.transactions[i] = transaction
			return transaction, nil
		}
	}

	return domain.Transaction{}, repository.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByPaymentIntentID(_ context.Context, intentID string) (domain.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.PaymentIntentID == intentID {
			return transaction, nil
		}
	}

	return domain.Transaction{}, repository.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByMemberID(_ context.Context, memberID uint) ([]domain.Transaction, error) {
	var found []domain.Transaction
	for _, transaction := range r.transactions {
		if transaction.MemberID == memberID {
			found = append(found, transaction)
		}
	}

	return found, nil
}

type fakeAccounts struct {
	adjustments map[uint]decimal.Decimal
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{adjustments: make(map[uint]decimal.Decimal)}
}

func (a *fakeAccounts) AdjustAccount(_ context.Context, id uint, amount decimal.Decimal) error {
	a.adjustments[id] = a.adjustments[id].Add(amount)

	return nil
}

type fakePaymentProvider struct {
	succeeded map[string]bool
	created   int
}

func (p *fakePaymentProvider) CreateIntent(_ decimal.Decimal, _ uint) (string, string, error) {
	p.created++

	return "pi_test_123", "pi_test_123_secret", nil
}

func (p *fakePaymentProvider) IntentSucceeded(id string) (bool, error) {
	return p.succeeded[id], nil
}

type fakeReceiptSender struct {
	receipts int
}

func (s *fakeReceiptSender) SendReceipt(_ domain.Member, _ decimal.Decimal, _ string) error {
	s.receipts++

	return nil
}

type fixedSeasonProvider struct {
	season domain.Season
}

func (p *fixedSeasonProvider) GetCurrentSeason(_ context.Context) (domain.Season, error) {
	return p.season, nil
}

func TestTransactionService_CreateDepositIntent(t *testing.T) {
	member := domain.Member{ID: 3, Email: "duncan@example.com"}

	t.Run("records a pending deposit carrying the intent id", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		payments := &fakePaymentProvider{}
		svc := NewTransactionService(repo, newFakeAccounts(), &fixedSeasonProvider{season: domain.Season{ID: 5}}, payments, &fakeReceiptSender{})

		transaction, clientSecret, err := svc.CreateDepositIntent(context.Background(), member, decimal.NewFromInt(50))
		require.NoError(t, err)

		assert.Equal(t, "pi_test_123_secret", clientSecret)
		assert.Equal(t, "pi_test_123", transaction.PaymentIntentID)
		assert.Equal(t, domain.TransactionDeposit, transaction.Type)
		assert.Equal(t, domain.TransactionPending, transaction.Status)
		assert.Equal(t, uint(5), transaction.SeasonID)
		assert.Equal(t, 1, payments.created)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		svc := NewTransactionService(newFakeTransactionRepo(), newFakeAccounts(), &fixedSeasonProvider{}, &fakePaymentProvider{}, &fakeReceiptSender{})

		_, _, err := svc.CreateDepositIntent(context.Background(), member, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidTransaction)
	})
}

func TestTransactionService_ConfirmDeposit(t *testing.T) {
	member := domain.Member{ID: 3, Email: "duncan@example.com"}

	newPendingDeposit := func(t *testing.T, payments *fakePaymentProvider) (*TransactionService, *fakeAccounts, *fakeReceiptSender) {
		t.Helper()

		repo := newFakeTransactionRepo()
		accounts := newFakeAccounts()
		receipts := &fakeReceiptSender{}
		svc := NewTransactionService(repo, accounts, &fixedSeasonProvider{season: domain.Season{ID: 5}}, payments, receipts)

		_, _, err := svc.CreateDepositIntent(context.Background(), member, decimal.NewFromInt(50))
		require.NoError(t, err)

		return svc, accounts, receipts
	}

	t.Run("completes the transaction and credits the account", func(t *testing.T) {
		payments := &fakePaymentProvider{succeeded: map[string]bool{"pi_test_123": true}}
		svc, accounts, receipts := newPendingDeposit(t, payments)

		transaction, err := svc.ConfirmDeposit(context.Background(), member, "pi_test_123")
		require.NoError(t, err)

		assert.Equal(t, domain.TransactionCompleted, transaction.Status)
		assert.True(t, accounts.adjustments[member.ID].Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 1, receipts.receipts)
	})

	t.Run("confirming twice credits the account once", func(t *testing.T) {
		payments := &fakePaymentProvider{succeeded: map[string]bool{"pi_test_123": true}}
		svc, accounts, _ := newPendingDeposit(t, payments)

		_, err := svc.ConfirmDeposit(context.Background(), member, "pi_test_123")
		require.NoError(t, err)
		transaction, err := svc.ConfirmDeposit(context.Background(), member, "pi_test_123")
		require.NoError(t, err)

		assert.Equal(t, domain.TransactionCompleted, transaction.Status)
		assert.True(t, accounts.adjustments[member.ID].Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejects another member's transaction", func(t *testing.T) {
		payments := &fakePaymentProvider{succeeded: map[string]bool{"pi_test_123": true}}
		svc, _, _ := newPendingDeposit(t, payments)

		_, err := svc.ConfirmDeposit(context.Background(), domain.Member{ID: 99}, "pi_test_123")
		assert.ErrorIs(t, err, ErrTransactionWrongOwner)
	})

	t.Run("rejects a payment that has not succeeded", func(t *testing.T) {
		payments := &fakePaymentProvider{succeeded: map[string]bool{}}
		svc, accounts, _ := newPendingDeposit(t, payments)

		_, err := svc.ConfirmDeposit(context.Background(), member, "pi_test_123")
		assert.ErrorIs(t, err, ErrPaymentNotSucceeded)
		assert.True(t, accounts.adjustments[member.ID].IsZero())
	})

	t.Run("returns ErrTransactionNotFound for an unknown intent", func(t *testing.T) {
		payments := &fakePaymentProvider{}
		svc, _, _ := newPendingDeposit(t, payments)

		_, err := svc.ConfirmDeposit(context.Background(), member, "pi_unknown")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionService_ChargeTourCardFee(t *testing.T) {
	member := domain.Member{ID: 3}

	t.Run("debits the buy-in and records the fee", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		accounts := newFakeAccounts()
		svc := NewTransactionService(repo, accounts, &fixedSeasonProvider{}, &fakePaymentProvider{}, &fakeReceiptSender{})

		transaction, err := svc.ChargeTourCardFee(context.Background(), member, domain.Tour{
			ID:       2,
			SeasonID: 5,
			Name:     "PGC Tour",
			BuyIn:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TransactionTourCardFee, transaction.Type)
		assert.Equal(t, domain.TransactionCompleted, transaction.Status)
		assert.True(t, accounts.adjustments[member.ID].Equal(decimal.NewFromInt(-100)))
	})

	t.Run("a zero buy-in records nothing", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		accounts := newFakeAccounts()
		svc := NewTransactionService(repo, accounts, &fixedSeasonProvider{}, &fakePaymentProvider{}, &fakeReceiptSender{})

		transaction, err := svc.ChargeTourCardFee(context.Background(), member, domain.Tour{BuyIn: decimal.Zero})
		require.NoError(t, err)

		assert.Zero(t, transaction.ID)
		assert.Empty(t, repo.transactions)
		assert.True(t, accounts.adjustments[member.ID].IsZero())
	})
}
