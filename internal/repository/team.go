package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var ErrTeamNotFound = dao.ErrTeamNotFound

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	Update(ctx context.Context, team dao.Team) (dao.Team, error)
	FindByID(ctx context.Context, id uint) (dao.Team, error)
	FindByTournamentID(ctx context.Context, tournamentID uint) ([]dao.Team, error)
	FindByCardAndTournament(ctx context.Context, tourCardID, tournamentID uint) (dao.Team, error)
	FindByTourCardID(ctx context.Context, tourCardID uint) ([]dao.Team, error)
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(team))
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeamRepository) Update(ctx context.Context, team domain.Team) (domain.Team, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(team))
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeamRepository) FindByTournamentID(ctx context.Context, tournamentID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByTournamentID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTournamentID -> %w", err)
	}

	teams := make([]domain.Team, len(found))
	for i, t := range found {
		teams[i] = r.daoToDomain(t)
	}

	return teams, nil
}

func (r *TeamRepository) FindByCardAndTournament(ctx context.Context, tourCardID, tournamentID uint) (domain.Team, error) {
	found, err := r.dao.FindByCardAndTournament(ctx, tourCardID, tournamentID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByCardAndTournament -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindByTourCardID(ctx context.Context, tourCardID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByTourCardID(ctx, tourCardID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTourCardID -> %w", err)
	}

	teams := make([]domain.Team, len(found))
	for i, t := range found {
		teams[i] = r.daoToDomain(t)
	}

	return teams, nil
}

func (r *TeamRepository) daoToDomain(t dao.Team) domain.Team {
	return domain.Team{
		ID:           t.ID,
		TourCardID:   t.TourCardID,
		TournamentID: t.TournamentID,
		GolferIDs:    t.GolferIDs,
		Earnings:     t.Earnings,
		Points:       t.Points,
		Score:        t.Score,
		Position:     t.Position,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TeamRepository) domainToDAO(t domain.Team) dao.Team {
	return dao.Team{
		ID:           t.ID,
		TourCardID:   t.TourCardID,
		TournamentID: t.TournamentID,
		GolferIDs:    t.GolferIDs,
		Earnings:     t.Earnings,
		Points:       t.Points,
		Score:        t.Score,
		Position:     t.Position,
	}
}
