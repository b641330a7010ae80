package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var ErrSeasonNotFound = repository.ErrSeasonNotFound

type SeasonRepository interface {
	FindByYear(ctx context.Context, year int) (domain.Season, error)
	FindAll(ctx context.Context) ([]domain.Season, error)
}

type SeasonService struct {
	repo SeasonRepository
	now  func() time.Time
}

func NewSeasonService(repo SeasonRepository) *SeasonService {
	return &SeasonService{
		repo: repo,
		now:  time.Now,
	}
}

// GetCurrentSeason returns the season whose year equals the current
// calendar year, or ErrSeasonNotFound when none exists.
func (s *SeasonService) GetCurrentSeason(ctx context.Context) (domain.Season, error) {
	season, err := s.repo.FindByYear(ctx, s.now().Year())
	if err != nil {
		return domain.Season{}, fmt.Errorf("s.repo.FindByYear -> %w", err)
	}

	return season, nil
}

func (s *SeasonService) GetAllSeasons(ctx context.Context) ([]domain.Season, error) {
	seasons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return seasons, nil
}
