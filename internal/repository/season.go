package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var ErrSeasonNotFound = dao.ErrSeasonNotFound

type SeasonDAO interface {
	Insert(ctx context.Context, season dao.Season) (dao.Season, error)
	FindByID(ctx context.Context, id uint) (dao.Season, error)
	FindByYear(ctx context.Context, year int) (dao.Season, error)
	FindAll(ctx context.Context) ([]dao.Season, error)
}

type SeasonRepository struct {
	dao SeasonDAO
}

func NewSeasonRepository(dao SeasonDAO) *SeasonRepository {
	return &SeasonRepository{
		dao: dao,
	}
}

func (r *SeasonRepository) Create(ctx context.Context, season domain.Season) (domain.Season, error) {
	created, err := r.dao.Insert(ctx, dao.Season{
		Year:      season.Year,
		Number:    season.Number,
		StartDate: season.StartDate,
		EndDate:   season.EndDate,
	})
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SeasonRepository) FindByID(ctx context.Context, id uint) (domain.Season, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeasonRepository) FindByYear(ctx context.Context, year int) (domain.Season, error) {
	found, err := r.dao.FindByYear(ctx, year)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindByYear -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeasonRepository) FindAll(ctx context.Context) ([]domain.Season, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	seasons := make([]domain.Season, len(found))
	for i, s := range found {
		seasons[i] = r.daoToDomain(s)
	}

	return seasons, nil
}

func (r *SeasonRepository) daoToDomain(s dao.Season) domain.Season {
	return domain.Season{
		ID:        s.ID,
		Year:      s.Year,
		Number:    s.Number,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
