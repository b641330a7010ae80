package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/push"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type fakePushRepo struct {
	subs   map[string]domain.PushSubscription
	nextID uint
}

func newFakePushRepo() *fakePushRepo {
	return &fakePushRepo{
		subs:   make(map[string]domain.PushSubscription),
		nextID: 1,
	}
}

func (r *fakePushRepo) Save(_ context.Context, sub domain.PushSubscription) (domain.PushSubscription, error) {
	if existing, ok := r.subs[sub.Endpoint]; ok {
		sub.ID = existing.ID
	} else {
		sub.ID = r.nextID
		r.nextID++
	}
	r.subs[sub.Endpoint] = sub

	return sub, nil
}

func (r *fakePushRepo) DeleteByEndpoint(_ context.Context, endpoint string) error {
	if _, ok := r.subs[endpoint]; !ok {
		return repository.ErrPushSubscriptionNotFound
	}
	delete(r.subs, endpoint)

	return nil
}

func (r *fakePushRepo) FindAll(_ context.Context) ([]domain.PushSubscription, error) {
	subs := make([]domain.PushSubscription, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, sub)
	}

	return subs, nil
}

type fakePushSender struct {
	sent    []string
	failing map[string]error
}

func (s *fakePushSender) Send(sub domain.PushSubscription, _ push.Notification) error {
	if err, ok := s.failing[sub.Endpoint]; ok {
		return err
	}
	s.sent = append(s.sent, sub.Endpoint)

	return nil
}

func TestPushService_Subscribe(t *testing.T) {
	repo := newFakePushRepo()
	svc := NewPushService(repo, &fakePushSender{})

	first, err := svc.Subscribe(context.Background(), domain.PushSubscription{
		MemberID: 3,
		Endpoint: "https://push.example.com/abc",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Re-subscribing the same endpoint keeps a single row.
	second, err := svc.Subscribe(context.Background(), domain.PushSubscription{
		MemberID: 3,
		Endpoint: "https://push.example.com/abc",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.subs, 1)
}

func TestPushService_Unsubscribe(t *testing.T) {
	repo := newFakePushRepo()
	svc := NewPushService(repo, &fakePushSender{})

	_, err := svc.Subscribe(context.Background(), domain.PushSubscription{Endpoint: "https://push.example.com/abc"})
	require.NoError(t, err)

	t.Run("removes the endpoint", func(t *testing.T) {
		err := svc.Unsubscribe(context.Background(), "https://push.example.com/abc")
		require.NoError(t, err)
		assert.Empty(t, repo.subs)
	})

	t.Run("an unknown endpoint is not an error", func(t *testing.T) {
		err := svc.Unsubscribe(context.Background(), "https://push.example.com/gone")
		assert.NoError(t, err)
	})
}

func TestPushService_Broadcast(t *testing.T) {
	notification := push.Notification{Title: "PGC Tour", Body: "Standings have been updated."}

	t.Run("sends to every subscription", func(t *testing.T) {
		repo := newFakePushRepo()
		sender := &fakePushSender{}
		svc := NewPushService(repo, sender)

		for _, endpoint := range []string{"https://push.example.com/a", "https://push.example.com/b"} {
			_, err := svc.Subscribe(context.Background(), domain.PushSubscription{Endpoint: endpoint})
			require.NoError(t, err)
		}

		err := svc.Broadcast(context.Background(), notification)
		require.NoError(t, err)
		assert.Len(t, sender.sent, 2)
	})

	t.Run("prunes gone endpoints and keeps going", func(t *testing.T) {
		repo := newFakePushRepo()
		sender := &fakePushSender{failing: map[string]error{
			"https://push.example.com/gone":  push.ErrSubscriptionGone,
			"https://push.example.com/flaky": errors.New("503 from push service"),
		}}
		svc := NewPushService(repo, sender)

		for _, endpoint := range []string{
			"https://push.example.com/gone",
			"https://push.example.com/flaky",
			"https://push.example.com/ok",
		} {
			_, err := svc.Subscribe(context.Background(), domain.PushSubscription{Endpoint: endpoint})
			require.NoError(t, err)
		}

		err := svc.Broadcast(context.Background(), notification)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://push.example.com/ok"}, sender.sent)
		_, gone := repo.subs["https://push.example.com/gone"]
		assert.False(t, gone)
		_, flaky := repo.subs["https://push.example.com/flaky"]
		assert.True(t, flaky)
	})
}
