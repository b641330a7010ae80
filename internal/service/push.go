package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/push"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type PushSubscriptionRepository interface {
	Save(ctx context.Context, sub domain.PushSubscription) (domain.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	FindAll(ctx context.Context) ([]domain.PushSubscription, error)
}

type PushSender interface {
	Send(sub domain.PushSubscription, notification push.Notification) error
}

type PushService struct {
	repo   PushSubscriptionRepository
	sender PushSender
}

func NewPushService(repo PushSubscriptionRepository, sender PushSender) *PushService {
	return &PushService{
		repo:   repo,
		sender: sender,
	}
}

func (s *PushService) Subscribe(ctx context.Context, sub domain.PushSubscription) (domain.PushSubscription, error) {
	saved, err := s.repo.Save(ctx, sub)
	if err != nil {
		return domain.PushSubscription{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return saved, nil
}

// Unsubscribe removes the endpoint. Unknown endpoints are not an error;
// browsers retry unsubscription.
func (s *PushService) Unsubscribe(ctx context.Context, endpoint string) error {
	if err := s.repo.DeleteByEndpoint(ctx, endpoint); err != nil {
		if errors.Is(err, repository.ErrPushSubscriptionNotFound) {
			return nil
		}

		return fmt.Errorf("s.repo.DeleteByEndpoint -> %w", err)
	}

	return nil
}

// Broadcast sends the notification to every stored subscription,
// pruning endpoints the push service reports gone. Individual delivery
// failures are logged, not returned.
func (s *PushService) Broadcast(ctx context.Context, notification push.Notification) error {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	for _, sub := range subs {
		err = s.sender.Send(sub, notification)
		if err == nil {
			continue
		}

		if errors.Is(err, push.ErrSubscriptionGone) {
			if deleteErr := s.repo.DeleteByEndpoint(ctx, sub.Endpoint); deleteErr != nil {
				zap.L().Warn("failed to prune push subscription", zap.Uint("id", sub.ID), zap.Error(deleteErr))
			}
			continue
		}

		zap.L().Warn("failed to send push notification", zap.Uint("id", sub.ID), zap.Error(err))
	}

	return nil
}
