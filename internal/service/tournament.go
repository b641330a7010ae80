package service

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

type TournamentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tournament, error)
	FindBySeasonID(ctx context.Context, seasonID uint) ([]domain.Tournament, error)
}

type TournamentService struct {
	repo    TournamentRepository
	seasons CurrentSeasonProvider
}

func NewTournamentService(repo TournamentRepository, seasons CurrentSeasonProvider) *TournamentService {
	return &TournamentService{
		repo:    repo,
		seasons: seasons,
	}
}

func (s *TournamentService) GetTournament(ctx context.Context, id uint) (domain.Tournament, error) {
	tournament, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return tournament, nil
}

// GetSchedule lists the current season's tournaments by start date.
func (s *TournamentService) GetSchedule(ctx context.Context) ([]domain.Tournament, error) {
	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.seasons.GetCurrentSeason -> %w", err)
	}

	tournaments, err := s.repo.FindBySeasonID(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySeasonID -> %w", err)
	}

	return tournaments, nil
}
