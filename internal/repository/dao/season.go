package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSeasonNotFound = errors.New("season not found")

type Season struct {
	ID uint `gorm:"primaryKey"`

	Year   int `gorm:"unique;not null"`
	Number int `gorm:"not null"`

	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SeasonDAO struct {
	db *gorm.DB
}

func NewSeasonDAO(db *gorm.DB) *SeasonDAO {
	return &SeasonDAO{
		db: db,
	}
}

func (d *SeasonDAO) Insert(ctx context.Context, season Season) (Season, error) {
	result := d.db.WithContext(ctx).Create(&season)
	if result.Error != nil {
		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) FindByID(ctx context.Context, id uint) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).First(&season, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) FindByYear(ctx context.Context, year int) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).First(&season, "year = ?", year)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) FindAll(ctx context.Context) ([]Season, error) {
	var seasons []Season

	result := d.db.WithContext(ctx).Order("year DESC").Find(&seasons)
	if result.Error != nil {
		return nil, result.Error
	}

	return seasons, nil
}
