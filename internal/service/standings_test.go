package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/push"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type fakeStandingsTourRepo struct {
	tours []domain.Tour
	cards map[uint]domain.TourCard
}

func (r *fakeStandingsTourRepo) FindBySeasonID(_ context.Context, seasonID uint) ([]domain.Tour, error) {
	var found []domain.Tour
	for _, tour := range r.tours {
		if tour.SeasonID == seasonID {
			found = append(found, tour)
		}
	}

	return found, nil
}

func (r *fakeStandingsTourRepo) FindTourCardsByTourID(_ context.Context, tourID uint) ([]domain.TourCard, error) {
	var found []domain.TourCard
	for _, card := range r.cards {
		if card.TourID == tourID {
			found = append(found, card)
		}
	}

	return found, nil
}

func (r *fakeStandingsTourRepo) UpdateTourCard(_ context.Context, card domain.TourCard) (domain.TourCard, error) {
	if _, ok := r.cards[card.ID]; !ok {
		return domain.TourCard{}, repository.ErrTourCardNotFound
	}
	r.cards[card.ID] = card

	return card, nil
}

type fakeStandingsTeamRepo struct {
	byCard map[uint][]domain.Team
}

func (r *fakeStandingsTeamRepo) FindByTourCardID(_ context.Context, tourCardID uint) ([]domain.Team, error) {
	return r.byCard[tourCardID], nil
}

type recordingBroadcaster struct {
	notifications []push.Notification
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, notification push.Notification) error {
	b.notifications = append(b.notifications, notification)

	return nil
}

func TestStandingsService_UpdateStandings(t *testing.T) {
	seasons := &fixedSeasonProvider{season: domain.Season{ID: 5, Year: 2025}}

	t.Run("recomputes aggregates and positions per tour", func(t *testing.T) {
		tours := &fakeStandingsTourRepo{
			tours: []domain.Tour{{ID: 2, SeasonID: 5, Name: "PGC Tour"}},
			cards: map[uint]domain.TourCard{
				11: {ID: 11, TourID: 2},
				12: {ID: 12, TourID: 2},
				13: {ID: 13, TourID: 2},
			},
		}
		teams := &fakeStandingsTeamRepo{byCard: map[uint][]domain.Team{
			11: {
				{TourCardID: 11, Points: 500, Earnings: decimal.NewFromInt(1000), Position: "1"},
				{TourCardID: 11, Points: 100, Earnings: decimal.NewFromInt(50), Position: "T12"},
			},
			12: {
				{TourCardID: 12, Points: 300, Earnings: decimal.NewFromInt(400), Position: "T5"},
			},
			13: {
				{TourCardID: 13, Points: 300, Earnings: decimal.NewFromInt(200), Position: "T5"},
			},
		}}
		broadcaster := &recordingBroadcaster{}
		svc := NewStandingsService(tours, teams, seasons, broadcaster)

		err := svc.UpdateStandings(context.Background())
		require.NoError(t, err)

		leader := tours.cards[11]
		assert.Equal(t, "1", leader.Position)
		assert.Equal(t, 600, leader.Points)
		assert.True(t, leader.Earnings.Equal(decimal.NewFromInt(1050)))
		assert.Equal(t, 1, leader.Wins)
		assert.Equal(t, 1, leader.TopTens)
		assert.Equal(t, 2, leader.Appearances)

		assert.Equal(t, "T2", tours.cards[12].Position)
		assert.Equal(t, "T2", tours.cards[13].Position)

		require.Len(t, broadcaster.notifications, 1)
		assert.Equal(t, "Standings have been updated.", broadcaster.notifications[0].Body)
	})

	t.Run("skips tours without cards", func(t *testing.T) {
		tours := &fakeStandingsTourRepo{
			tours: []domain.Tour{{ID: 2, SeasonID: 5}},
			cards: map[uint]domain.TourCard{},
		}
		svc := NewStandingsService(tours, &fakeStandingsTeamRepo{}, seasons, &recordingBroadcaster{})

		err := svc.UpdateStandings(context.Background())
		assert.NoError(t, err)
	})

	t.Run("a card with no teams still gets a position", func(t *testing.T) {
		tours := &fakeStandingsTourRepo{
			tours: []domain.Tour{{ID: 2, SeasonID: 5}},
			cards: map[uint]domain.TourCard{
				11: {ID: 11, TourID: 2},
			},
		}
		svc := NewStandingsService(tours, &fakeStandingsTeamRepo{byCard: map[uint][]domain.Team{}}, seasons, &recordingBroadcaster{})

		err := svc.UpdateStandings(context.Background())
		require.NoError(t, err)

		card := tours.cards[11]
		assert.Equal(t, "1", card.Position)
		assert.Zero(t, card.Points)
		assert.Zero(t, card.Appearances)
	})
}
