package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

type Team struct {
	ID uint `gorm:"primaryKey"`

	// One team per card per tournament.
	TourCardID   uint `gorm:"not null;uniqueIndex:uni_teams_card_tournament,priority:1"`
	TournamentID uint `gorm:"not null;uniqueIndex:uni_teams_card_tournament,priority:2"`

	GolferIDs []int64 `gorm:"serializer:json;not null"`

	Earnings decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Points   int             `gorm:"not null;default:0"`
	Score    int             `gorm:"not null;default:0"`
	Position string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func (d *TeamDAO) Insert(ctx context.Context, team Team) (Team, error) {
	result := d.db.WithContext(ctx).Create(&team)
	if result.Error != nil {
		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) Update(ctx context.Context, team Team) (Team, error) {
	result := d.db.WithContext(ctx).Save(&team)
	if result.Error != nil {
		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByID(ctx context.Context, id uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByTournamentID(ctx context.Context, tournamentID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("points DESC, earnings DESC, id").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (d *TeamDAO) FindByCardAndTournament(ctx context.Context, tourCardID, tournamentID uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).
		Where("tour_card_id = ? AND tournament_id = ?", tourCardID, tournamentID).
		First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByTourCardID(ctx context.Context, tourCardID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).
		Where("tour_card_id = ?", tourCardID).
		Order("tournament_id").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}
