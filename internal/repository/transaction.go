package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var ErrTransactionNotFound = dao.ErrTransactionNotFound

type TransactionDAO interface {
	Insert(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	Update(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	FindByID(ctx context.Context, id uint) (dao.Transaction, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (dao.Transaction, error)
	FindByMemberID(ctx context.Context, memberID uint) ([]dao.Transaction, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(transaction))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(transaction))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uint) (domain.Transaction, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TransactionRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Transaction, error) {
	found, err := r.dao.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByPaymentIntentID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TransactionRepository) FindByMemberID(ctx context.Context, memberID uint) ([]domain.Transaction, error) {
	found, err := r.dao.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMemberID -> %w", err)
	}

	transactions := make([]domain.Transaction, len(found))
	for i, t := range found {
		transactions[i] = r.daoToDomain(t)
	}

	return transactions, nil
}

func (r *TransactionRepository) daoToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              t.ID,
		MemberID:        t.MemberID,
		SeasonID:        t.SeasonID,
		Amount:          t.Amount,
		Type:            domain.TransactionType(t.Type),
		Status:          t.Status,
		Description:     t.Description,
		PaymentIntentID: t.PaymentIntentID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *TransactionRepository) domainToDAO(t domain.Transaction) dao.Transaction {
	return dao.Transaction{
		ID:              t.ID,
		MemberID:        t.MemberID,
		SeasonID:        t.SeasonID,
		Amount:          t.Amount,
		Type:            string(t.Type),
		Status:          t.Status,
		Description:     t.Description,
		PaymentIntentID: t.PaymentIntentID,
	}
}
