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

type fakeTourRepo struct {
	tours    map[uint]domain.Tour
	cards    []domain.TourCard
	nextCard uint
}

func newFakeTourRepo(tours ...domain.Tour) *fakeTourRepo {
	repo := &fakeTourRepo{
		tours:    make(map[uint]domain.Tour),
		nextCard: 1,
	}
	for _, tour := range tours {
		repo.tours[tour.ID] = tour
	}

	return repo
}

func (r *fakeTourRepo) FindByID(_ context.Context, id uint) (domain.Tour, error) {
	tour, ok := r.tours[id]
	if !ok {
		return domain.Tour{}, repository.ErrTourNotFound
	}

	return tour, nil
}

func (r *fakeTourRepo) FindBySeasonID(_ context.Context, seasonID uint) ([]domain.Tour, error) {
	var found []domain.Tour
	for _, tour := range r.tours {
		if tour.SeasonID == seasonID {
			found = append(found, tour)
		}
	}

	return found, nil
}

func (r *fakeTourRepo) CreateTourCard(_ context.Context, card domain.TourCard) (domain.TourCard, error) {
	for _, existing := range r.cards {
		if existing.MemberID == card.MemberID && existing.TourID == card.TourID {
			return domain.TourCard{}, repository.ErrTourCardExists
		}
	}

	card.ID = r.nextCard
	r.nextCard++
	r.cards = append(r.cards, card)

	return card, nil
}

func (r *fakeTourRepo) FindTourCardsByTourID(_ context.Context, tourID uint) ([]domain.TourCard, error) {
	var found []domain.TourCard
	for _, card := range r.cards {
		if card.TourID == tourID {
			found = append(found, card)
		}
	}

	return found, nil
}

func (r *fakeTourRepo) FindTourCardByMemberAndSeason(_ context.Context, memberID, seasonID uint) (domain.TourCard, error) {
	for _, card := range r.cards {
		if card.MemberID == memberID && card.SeasonID == seasonID {
			return card, nil
		}
	}

	return domain.TourCard{}, repository.ErrTourCardNotFound
}

type recordingFeeCharger struct {
	charged []domain.Tour
}

func (c *recordingFeeCharger) ChargeTourCardFee(_ context.Context, _ domain.Member, tour domain.Tour) (domain.Transaction, error) {
	c.charged = append(c.charged, tour)

	return domain.Transaction{}, nil
}

func TestTourService_RegisterTourCard(t *testing.T) {
	member := domain.Member{ID: 3, FirstName: "Duncan", LastName: "Smith"}
	currentTour := domain.Tour{ID: 2, SeasonID: 5, Name: "PGC Tour", BuyIn: decimal.NewFromInt(100)}
	staleTour := domain.Tour{ID: 9, SeasonID: 4, Name: "Old Tour"}
	seasons := &fixedSeasonProvider{season: domain.Season{ID: 5, Year: 2025}}

	t.Run("registers the member and charges the buy-in", func(t *testing.T) {
		fees := &recordingFeeCharger{}
		svc := NewTourService(newFakeTourRepo(currentTour, staleTour), seasons, fees)

		card, err := svc.RegisterTourCard(context.Background(), member, currentTour.ID, "Dreams by Dutch")
		require.NoError(t, err)

		assert.Equal(t, member.ID, card.MemberID)
		assert.Equal(t, currentTour.ID, card.TourID)
		assert.Equal(t, uint(5), card.SeasonID)
		assert.Equal(t, "Dreams by Dutch", card.DisplayName)
		require.Len(t, fees.charged, 1)
		assert.Equal(t, currentTour.ID, fees.charged[0].ID)
	})

	t.Run("defaults the display name to the member's full name", func(t *testing.T) {
		svc := NewTourService(newFakeTourRepo(currentTour), seasons, &recordingFeeCharger{})

		card, err := svc.RegisterTourCard(context.Background(), member, currentTour.ID, "")
		require.NoError(t, err)

		assert.Equal(t, "Duncan Smith", card.DisplayName)
	})

	t.Run("rejects a tour from another season", func(t *testing.T) {
		fees := &recordingFeeCharger{}
		svc := NewTourService(newFakeTourRepo(currentTour, staleTour), seasons, fees)

		_, err := svc.RegisterTourCard(context.Background(), member, staleTour.ID, "")
		assert.ErrorIs(t, err, ErrWrongSeason)
		assert.Empty(t, fees.charged)
	})

	t.Run("rejects a second card on the same tour", func(t *testing.T) {
		svc := NewTourService(newFakeTourRepo(currentTour), seasons, &recordingFeeCharger{})

		_, err := svc.RegisterTourCard(context.Background(), member, currentTour.ID, "")
		require.NoError(t, err)

		_, err = svc.RegisterTourCard(context.Background(), member, currentTour.ID, "")
		assert.ErrorIs(t, err, ErrTourCardExists)
	})

	t.Run("rejects an unknown tour", func(t *testing.T) {
		svc := NewTourService(newFakeTourRepo(), seasons, &recordingFeeCharger{})

		_, err := svc.RegisterTourCard(context.Background(), member, 404, "")
		assert.ErrorIs(t, err, ErrTourNotFound)
	})
}

func TestTourService_GetCurrentTourCard(t *testing.T) {
	member := domain.Member{ID: 3}
	tour := domain.Tour{ID: 2, SeasonID: 5}
	seasons := &fixedSeasonProvider{season: domain.Season{ID: 5}}

	t.Run("finds the member's card for the current season", func(t *testing.T) {
		repo := newFakeTourRepo(tour)
		svc := NewTourService(repo, seasons, &recordingFeeCharger{})

		registered, err := svc.RegisterTourCard(context.Background(), member, tour.ID, "Dutch")
		require.NoError(t, err)

		card, err := svc.GetCurrentTourCard(context.Background(), member.ID)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, card.ID)
	})

	t.Run("returns ErrTourCardNotFound when the member never registered", func(t *testing.T) {
		svc := NewTourService(newFakeTourRepo(tour), seasons, &recordingFeeCharger{})

		_, err := svc.GetCurrentTourCard(context.Background(), member.ID)
		assert.ErrorIs(t, err, ErrTourCardNotFound)
	})
}
