package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPushSubscriptionNotFound = errors.New("push subscription not found")

type PushSubscription struct {
	ID uint `gorm:"primaryKey"`

	MemberID uint   `gorm:"not null;index"`
	Endpoint string `gorm:"unique;not null"`
	P256dh   string `gorm:"not null"`
	Auth     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type PushSubscriptionDAO struct {
	db *gorm.DB
}

func NewPushSubscriptionDAO(db *gorm.DB) *PushSubscriptionDAO {
	return &PushSubscriptionDAO{
		db: db,
	}
}

// Upsert stores the subscription, replacing the keys when the endpoint
// is already known. Browsers re-subscribe with the same endpoint after
// a key rotation.
func (d *PushSubscriptionDAO) Upsert(ctx context.Context, sub PushSubscription) (PushSubscription, error) {
	var existing PushSubscription

	result := d.db.WithContext(ctx).First(&existing, "endpoint = ?", sub.Endpoint)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if createResult := d.db.WithContext(ctx).Create(&sub); createResult.Error != nil {
				return PushSubscription{}, createResult.Error
			}

			return sub, nil
		}

		return PushSubscription{}, result.Error
	}

	existing.MemberID = sub.MemberID
	existing.P256dh = sub.P256dh
	existing.Auth = sub.Auth
	if saveResult := d.db.WithContext(ctx).Save(&existing); saveResult.Error != nil {
		return PushSubscription{}, saveResult.Error
	}

	return existing, nil
}

func (d *PushSubscriptionDAO) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	result := d.db.WithContext(ctx).Where("endpoint = ?", endpoint).Delete(&PushSubscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPushSubscriptionNotFound
	}

	return nil
}

func (d *PushSubscriptionDAO) FindAll(ctx context.Context) ([]PushSubscription, error) {
	var subs []PushSubscription

	result := d.db.WithContext(ctx).Find(&subs)
	if result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}
