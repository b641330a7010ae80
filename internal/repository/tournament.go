package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var ErrTournamentNotFound = dao.ErrTournamentNotFound

type TournamentDAO interface {
	Insert(ctx context.Context, tournament dao.Tournament) (dao.Tournament, error)
	FindByID(ctx context.Context, id uint) (dao.Tournament, error)
	FindBySeasonID(ctx context.Context, seasonID uint) ([]dao.Tournament, error)
}

type TournamentRepository struct {
	dao TournamentDAO
}

func NewTournamentRepository(dao TournamentDAO) *TournamentRepository {
	return &TournamentRepository{
		dao: dao,
	}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(tournament))
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TournamentRepository) FindByID(ctx context.Context, id uint) (domain.Tournament, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TournamentRepository) FindBySeasonID(ctx context.Context, seasonID uint) ([]domain.Tournament, error) {
	found, err := r.dao.FindBySeasonID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySeasonID -> %w", err)
	}

	tournaments := make([]domain.Tournament, len(found))
	for i, t := range found {
		tournaments[i] = r.daoToDomain(t)
	}

	return tournaments, nil
}

func (r *TournamentRepository) daoToDomain(t dao.Tournament) domain.Tournament {
	return domain.Tournament{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Name:         t.Name,
		Tier:         t.Tier,
		Course:       t.Course,
		Location:     t.Location,
		LogoURL:      t.LogoURL,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		CurrentRound: t.CurrentRound,
		LivePlay:     t.LivePlay,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TournamentRepository) domainToDAO(t domain.Tournament) dao.Tournament {
	return dao.Tournament{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Name:         t.Name,
		Tier:         t.Tier,
		Course:       t.Course,
		Location:     t.Location,
		LogoURL:      t.LogoURL,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		CurrentRound: t.CurrentRound,
		LivePlay:     t.LivePlay,
	}
}
