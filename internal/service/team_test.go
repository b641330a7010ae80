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

type fakeTeamRepo struct {
	teams  []domain.Team
	nextID uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{nextID: 1}
}

func (r *fakeTeamRepo) Create(_ context.Context, team domain.Team) (domain.Team, error) {
	team.ID = r.nextID
	r.nextID++
	r.teams = append(r.teams, team)

	return team, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team domain.Team) (domain.Team, error) {
	for i := range r.teams {
		if r.teams[i].ID == team.ID {
			r.teams[i] = team
			return team, nil
		}
	}

	return domain.Team{}, repository.ErrTeamNotFound
}

func (r *fakeTeamRepo) FindByTournamentID(_ context.Context, tournamentID uint) ([]domain.Team, error) {
	var found []domain.Team
	for _, team := range r.teams {
		if team.TournamentID == tournamentID {
			found = append(found, team)
		}
	}

	return found, nil
}

func (r *fakeTeamRepo) FindByCardAndTournament(_ context.Context, tourCardID, tournamentID uint) (domain.Team, error) {
	for _, team := range r.teams {
		if team.TourCardID == tourCardID && team.TournamentID == tournamentID {
			return team, nil
		}
	}

	return domain.Team{}, repository.ErrTeamNotFound
}

type fakeTournamentFinder struct {
	tournaments map[uint]domain.Tournament
}

func (r *fakeTournamentFinder) FindByID(_ context.Context, id uint) (domain.Tournament, error) {
	tournament, ok := r.tournaments[id]
	if !ok {
		return domain.Tournament{}, repository.ErrTournamentNotFound
	}

	return tournament, nil
}

func validGolferIDs() []int64 {
	ids := make([]int64, domain.TeamSize)
	for i := range ids {
		ids[i] = int64(100 + i)
	}

	return ids
}

func TestTeamService_SubmitPicks(t *testing.T) {
	teeOff := time.Date(2025, time.April, 10, 13, 0, 0, 0, time.UTC)
	card := domain.TourCard{ID: 7, MemberID: 3}

	newService := func(repo *fakeTeamRepo, now time.Time) *TeamService {
		svc := NewTeamService(repo, &fakeTournamentFinder{tournaments: map[uint]domain.Tournament{
			42: {ID: 42, StartDate: teeOff},
		}})
		svc.now = func() time.Time { return now }

		return svc
	}

	t.Run("creates a team before tee-off", func(t *testing.T) {
		repo := newFakeTeamRepo()
		svc := newService(repo, teeOff.Add(-time.Hour))

		team, err := svc.SubmitPicks(context.Background(), card, 42, validGolferIDs())
		require.NoError(t, err)

		assert.Equal(t, card.ID, team.TourCardID)
		assert.Equal(t, uint(42), team.TournamentID)
		assert.Len(t, team.GolferIDs, domain.TeamSize)
	})

	t.Run("replaces the golfer list on resubmission", func(t *testing.T) {
		repo := newFakeTeamRepo()
		svc := newService(repo, teeOff.Add(-time.Hour))

		first, err := svc.SubmitPicks(context.Background(), card, 42, validGolferIDs())
		require.NoError(t, err)

		replacement := validGolferIDs()
		replacement[0] = 999
		second, err := svc.SubmitPicks(context.Background(), card, 42, replacement)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, int64(999), second.GolferIDs[0])
		assert.Len(t, repo.teams, 1)
	})

	t.Run("rejects picks at tee-off", func(t *testing.T) {
		svc := newService(newFakeTeamRepo(), teeOff)

		_, err := svc.SubmitPicks(context.Background(), card, 42, validGolferIDs())
		assert.ErrorIs(t, err, ErrTournamentStarted)
	})

	t.Run("rejects the wrong golfer count", func(t *testing.T) {
		svc := newService(newFakeTeamRepo(), teeOff.Add(-time.Hour))

		_, err := svc.SubmitPicks(context.Background(), card, 42, validGolferIDs()[:domain.TeamSize-1])
		assert.ErrorIs(t, err, ErrWrongGolferCount)
	})

	t.Run("rejects duplicate golfers", func(t *testing.T) {
		svc := newService(newFakeTeamRepo(), teeOff.Add(-time.Hour))

		ids := validGolferIDs()
		ids[1] = ids[0]
		_, err := svc.SubmitPicks(context.Background(), card, 42, ids)
		assert.ErrorIs(t, err, ErrDuplicateGolfer)
	})

	t.Run("rejects an unknown tournament", func(t *testing.T) {
		svc := newService(newFakeTeamRepo(), teeOff.Add(-time.Hour))

		_, err := svc.SubmitPicks(context.Background(), card, 1, validGolferIDs())
		assert.ErrorIs(t, err, ErrTournamentNotFound)
	})
}

func TestTeamService_GetLeaderboard(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, &fakeTournamentFinder{tournaments: map[uint]domain.Tournament{
		42: {ID: 42},
	}})

	_, err := repo.Create(context.Background(), domain.Team{TourCardID: 1, TournamentID: 42})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), domain.Team{TourCardID: 2, TournamentID: 42})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), domain.Team{TourCardID: 1, TournamentID: 43})
	require.NoError(t, err)

	t.Run("returns the tournament's teams", func(t *testing.T) {
		teams, err := svc.GetLeaderboard(context.Background(), 42)
		require.NoError(t, err)
		assert.Len(t, teams, 2)
	})

	t.Run("returns ErrTournamentNotFound for an unknown tournament", func(t *testing.T) {
		_, err := svc.GetLeaderboard(context.Background(), 99)
		assert.ErrorIs(t, err, ErrTournamentNotFound)
	})
}
