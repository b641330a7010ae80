package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type Transaction struct {
	ID uint `gorm:"primaryKey"`

	MemberID uint `gorm:"not null;index"`
	SeasonID uint `gorm:"index"`

	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type   string          `gorm:"not null"`
	Status string          `gorm:"not null"`

	Description     string
	PaymentIntentID string `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) Insert(ctx context.Context, transaction Transaction) (Transaction, error) {
	result := d.db.WithContext(ctx).Create(&transaction)
	if result.Error != nil {
		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) Update(ctx context.Context, transaction Transaction) (Transaction, error) {
	result := d.db.WithContext(ctx).Save(&transaction)
	if result.Error != nil {
		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByID(ctx context.Context, id uint) (Transaction, error) {
	var transaction Transaction

	result := d.db.WithContext(ctx).First(&transaction, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByPaymentIntentID(ctx context.Context, intentID string) (Transaction, error) {
	var transaction Transaction

	result := d.db.WithContext(ctx).First(&transaction, "payment_intent_id = ?", intentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByMemberID(ctx context.Context, memberID uint) ([]Transaction, error) {
	var transactions []Transaction

	result := d.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}
