package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var ErrPushSubscriptionNotFound = dao.ErrPushSubscriptionNotFound

type PushSubscriptionDAO interface {
	Upsert(ctx context.Context, sub dao.PushSubscription) (dao.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	FindAll(ctx context.Context) ([]dao.PushSubscription, error)
}

type PushSubscriptionRepository struct {
	dao PushSubscriptionDAO
}

func NewPushSubscriptionRepository(dao PushSubscriptionDAO) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{
		dao: dao,
	}
}

func (r *PushSubscriptionRepository) Save(ctx context.Context, sub domain.PushSubscription) (domain.PushSubscription, error) {
	saved, err := r.dao.Upsert(ctx, dao.PushSubscription{
		MemberID: sub.MemberID,
		Endpoint: sub.Endpoint,
		P256dh:   sub.P256dh,
		Auth:     sub.Auth,
	})
	if err != nil {
		return domain.PushSubscription{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if err := r.dao.DeleteByEndpoint(ctx, endpoint); err != nil {
		return fmt.Errorf("r.dao.DeleteByEndpoint -> %w", err)
	}

	return nil
}

func (r *PushSubscriptionRepository) FindAll(ctx context.Context) ([]domain.PushSubscription, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	subs := make([]domain.PushSubscription, len(found))
	for i, s := range found {
		subs[i] = r.daoToDomain(s)
	}

	return subs, nil
}

func (r *PushSubscriptionRepository) daoToDomain(s dao.PushSubscription) domain.PushSubscription {
	return domain.PushSubscription{
		ID:        s.ID,
		MemberID:  s.MemberID,
		Endpoint:  s.Endpoint,
		P256dh:    s.P256dh,
		Auth:      s.Auth,
		CreatedAt: s.CreatedAt,
	}
}
