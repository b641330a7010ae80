package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type Tournament struct {
	ID uint `gorm:"primaryKey"`

	SeasonID uint   `gorm:"not null;index"`
	Name     string `gorm:"not null"`
	Tier     string

	Course   string
	Location string
	LogoURL  string

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	CurrentRound int  `gorm:"not null;default:0"`
	LivePlay     bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TournamentDAO struct {
	db *gorm.DB
}

func NewTournamentDAO(db *gorm.DB) *TournamentDAO {
	return &TournamentDAO{
		db: db,
	}
}

func (d *TournamentDAO) Insert(ctx context.Context, tournament Tournament) (Tournament, error) {
	result := d.db.WithContext(ctx).Create(&tournament)
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindByID(ctx context.Context, id uint) (Tournament, error) {
	var tournament Tournament

	result := d.db.WithContext(ctx).First(&tournament, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindBySeasonID(ctx context.Context, seasonID uint) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("start_date").
		Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}
