package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/push"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/standings"
)

type StandingsTourRepository interface {
	FindBySeasonID(ctx context.Context, seasonID uint) ([]domain.Tour, error)
	FindTourCardsByTourID(ctx context.Context, tourID uint) ([]domain.TourCard, error)
	UpdateTourCard(ctx context.Context, card domain.TourCard) (domain.TourCard, error)
}

type StandingsTeamRepository interface {
	FindByTourCardID(ctx context.Context, tourCardID uint) ([]domain.Team, error)
}

type Broadcaster interface {
	Broadcast(ctx context.Context, notification push.Notification) error
}

type StandingsService struct {
	tours    StandingsTourRepository
	teams    StandingsTeamRepository
	seasons  CurrentSeasonProvider
	notifier Broadcaster
}

func NewStandingsService(
	tours StandingsTourRepository,
	teams StandingsTeamRepository,
	seasons CurrentSeasonProvider,
	notifier Broadcaster,
) *StandingsService {
	return &StandingsService{
		tours:    tours,
		teams:    teams,
		seasons:  seasons,
		notifier: notifier,
	}
}

// UpdateStandings recomputes every tour card's seasonal aggregates and
// position for the current season, one tour at a time, then notifies
// push subscribers. Tours without cards are skipped.
func (s *StandingsService) UpdateStandings(ctx context.Context) error {
	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return fmt.Errorf("s.seasons.GetCurrentSeason -> %w", err)
	}

	tours, err := s.tours.FindBySeasonID(ctx, season.ID)
	if err != nil {
		return fmt.Errorf("s.tours.FindBySeasonID -> %w", err)
	}

	for _, tour := range tours {
		if err = s.updateTour(ctx, tour); err != nil {
			return fmt.Errorf("s.updateTour(%v) -> %w", tour.ID, err)
		}
	}

	zap.L().Info("standings updated",
		zap.Int("season_year", season.Year),
		zap.Int("tours", len(tours)))

	if s.notifier != nil {
		if err = s.notifier.Broadcast(ctx, push.Notification{
			Title: "PGC Tour",
			Body:  "Standings have been updated.",
			URL:   "/standings",
		}); err != nil {
			zap.L().Warn("failed to broadcast standings update", zap.Error(err))
		}
	}

	return nil
}

func (s *StandingsService) updateTour(ctx context.Context, tour domain.Tour) error {
	cards, err := s.tours.FindTourCardsByTourID(ctx, tour.ID)
	if err != nil {
		return fmt.Errorf("s.tours.FindTourCardsByTourID -> %w", err)
	}
	if len(cards) == 0 {
		return nil
	}

	entries := make([]standings.Entry, len(cards))
	byCardID := make(map[uint]domain.TourCard, len(cards))
	for i, card := range cards {
		teams, teamsErr := s.teams.FindByTourCardID(ctx, card.ID)
		if teamsErr != nil {
			return fmt.Errorf("s.teams.FindByTourCardID -> %w", teamsErr)
		}

		entries[i] = standings.Aggregate(card.ID, teams)
		byCardID[card.ID] = card
	}

	for _, entry := range standings.Rank(entries) {
		card := byCardID[entry.TourCardID]
		card.Earnings = entry.Earnings
		card.Points = entry.Points
		card.Position = entry.Position
		card.Wins = entry.Wins
		card.TopTens = entry.TopTens
		card.Appearances = entry.Appearances

		if _, err = s.tours.UpdateTourCard(ctx, card); err != nil {
			return fmt.Errorf("s.tours.UpdateTourCard -> %w", err)
		}
	}

	return nil
}
