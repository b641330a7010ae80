package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var (
	ErrTeamNotFound       = repository.ErrTeamNotFound
	ErrTournamentStarted  = errors.New("tournament has already started")
	ErrWrongGolferCount   = fmt.Errorf("a team must pick exactly %v golfers", domain.TeamSize)
	ErrDuplicateGolfer    = errors.New("a golfer can only be picked once")
	ErrNoTourCard         = repository.ErrTourCardNotFound
	ErrTournamentNotFound = repository.ErrTournamentNotFound
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	Update(ctx context.Context, team domain.Team) (domain.Team, error)
	FindByTournamentID(ctx context.Context, tournamentID uint) ([]domain.Team, error)
	FindByCardAndTournament(ctx context.Context, tourCardID, tournamentID uint) (domain.Team, error)
}

type TeamTournamentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tournament, error)
}

type TeamService struct {
	repo        TeamRepository
	tournaments TeamTournamentRepository
	now         func() time.Time
}

func NewTeamService(repo TeamRepository, tournaments TeamTournamentRepository) *TeamService {
	return &TeamService{
		repo:        repo,
		tournaments: tournaments,
		now:         time.Now,
	}
}

// SubmitPicks creates the card's team for a tournament, or replaces its
// golfer list when a team already exists. Picks lock at tee-off.
func (s *TeamService) SubmitPicks(ctx context.Context, card domain.TourCard, tournamentID uint, golferIDs []int64) (domain.Team, error) {
	if err := validatePicks(golferIDs); err != nil {
		return domain.Team{}, err
	}

	tournament, err := s.tournaments.FindByID(ctx, tournamentID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.tournaments.FindByID -> %w", err)
	}
	if tournament.Started(s.now()) {
		return domain.Team{}, ErrTournamentStarted
	}

	existing, err := s.repo.FindByCardAndTournament(ctx, card.ID, tournamentID)
	if err != nil {
		if !errors.Is(err, repository.ErrTeamNotFound) {
			return domain.Team{}, fmt.Errorf("s.repo.FindByCardAndTournament -> %w", err)
		}

		created, createErr := s.repo.Create(ctx, domain.Team{
			TourCardID:   card.ID,
			TournamentID: tournamentID,
			GolferIDs:    golferIDs,
		})
		if createErr != nil {
			return domain.Team{}, fmt.Errorf("s.repo.Create -> %w", createErr)
		}

		return created, nil
	}

	existing.GolferIDs = golferIDs
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// GetLeaderboard returns a tournament's teams in leaderboard order.
func (s *TeamService) GetLeaderboard(ctx context.Context, tournamentID uint) ([]domain.Team, error) {
	if _, err := s.tournaments.FindByID(ctx, tournamentID); err != nil {
		return nil, fmt.Errorf("s.tournaments.FindByID -> %w", err)
	}

	teams, err := s.repo.FindByTournamentID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTournamentID -> %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, tourCardID, tournamentID uint) (domain.Team, error) {
	team, err := s.repo.FindByCardAndTournament(ctx, tourCardID, tournamentID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.FindByCardAndTournament -> %w", err)
	}

	return team, nil
}

func validatePicks(golferIDs []int64) error {
	if len(golferIDs) != domain.TeamSize {
		return ErrWrongGolferCount
	}

	seen := make(map[int64]struct{}, len(golferIDs))
	for _, id := range golferIDs {
		if _, ok := seen[id]; ok {
			return ErrDuplicateGolfer
		}
		seen[id] = struct{}{}
	}

	return nil
}
