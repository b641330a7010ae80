package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type fakeSeasonRepo struct {
	seasons []domain.Season
}

func (r *fakeSeasonRepo) FindByYear(_ context.Context, year int) (domain.Season, error) {
	for _, season := range r.seasons {
		if season.Year == year {
			return season, nil
		}
	}

	return domain.Season{}, repository.ErrSeasonNotFound
}

func (r *fakeSeasonRepo) FindAll(_ context.Context) ([]domain.Season, error) {
	return r.seasons, nil
}

func TestSeasonService_GetCurrentSeason(t *testing.T) {
	repo := &fakeSeasonRepo{seasons: []domain.Season{
		{ID: 1, Year: 2024, Number: 4},
		{ID: 2, Year: 2025, Number: 5},
	}}

	t.Run("picks the season matching the calendar year", func(t *testing.T) {
		svc := NewSeasonService(repo)
		svc.now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

		season, err := svc.GetCurrentSeason(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint(2), season.ID)
	})

	t.Run("returns ErrSeasonNotFound when no season covers the year", func(t *testing.T) {
		svc := NewSeasonService(repo)
		svc.now = func() time.Time { return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC) }

		_, err := svc.GetCurrentSeason(context.Background())
		assert.ErrorIs(t, err, ErrSeasonNotFound)
	})
}

func TestSeasonService_GetAllSeasons(t *testing.T) {
	repo := &fakeSeasonRepo{seasons: []domain.Season{{ID: 1, Year: 2024}, {ID: 2, Year: 2025}}}
	svc := NewSeasonService(repo)

	seasons, err := svc.GetAllSeasons(context.Background())
	require.NoError(t, err)
	assert.Len(t, seasons, 2)
}
