package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTourNotFound     = errors.New("tour not found")
	ErrTourCardNotFound = errors.New("tour card not found")
	ErrTourCardExists   = errors.New("tour card already exists")
)

type Tour struct {
	ID uint `gorm:"primaryKey"`

	SeasonID uint   `gorm:"not null;index"`
	Name     string `gorm:"not null"`

	ShortForm    string
	LogoURL      string
	BuyIn        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PlayoffSpots int             `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TourCard struct {
	ID uint `gorm:"primaryKey"`

	// A member holds at most one card per tour.
	MemberID uint `gorm:"not null;uniqueIndex:uni_tour_cards_member_tour,priority:1"`
	TourID   uint `gorm:"not null;uniqueIndex:uni_tour_cards_member_tour,priority:2"`
	SeasonID uint `gorm:"not null;index"`

	DisplayName string `gorm:"not null"`

	Earnings    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Points      int             `gorm:"not null;default:0"`
	Position    string
	Wins        int `gorm:"not null;default:0"`
	TopTens     int `gorm:"not null;default:0"`
	Appearances int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TourDAO struct {
	db *gorm.DB
}

func NewTourDAO(db *gorm.DB) *TourDAO {
	return &TourDAO{
		db: db,
	}
}

func (d *TourDAO) FindByID(ctx context.Context, id uint) (Tour, error) {
	var tour Tour

	result := d.db.WithContext(ctx).First(&tour, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tour{}, ErrTourNotFound
		}

		return Tour{}, result.Error
	}

	return tour, nil
}

func (d *TourDAO) FindBySeasonID(ctx context.Context, seasonID uint) ([]Tour, error) {
	var tours []Tour

	result := d.db.WithContext(ctx).Where("season_id = ?", seasonID).Order("name").Find(&tours)
	if result.Error != nil {
		return nil, result.Error
	}

	return tours, nil
}

func (d *TourDAO) Insert(ctx context.Context, tour Tour) (Tour, error) {
	result := d.db.WithContext(ctx).Create(&tour)
	if result.Error != nil {
		return Tour{}, result.Error
	}

	return tour, nil
}

func (d *TourDAO) InsertTourCard(ctx context.Context, card TourCard) (TourCard, error) {
	result := d.db.WithContext(ctx).Create(&card)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uni_tour_cards_member_tour") {
			return TourCard{}, ErrTourCardExists
		}

		return TourCard{}, result.Error
	}

	return card, nil
}

func (d *TourDAO) FindTourCardByID(ctx context.Context, id uint) (TourCard, error) {
	var card TourCard

	result := d.db.WithContext(ctx).First(&card, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TourCard{}, ErrTourCardNotFound
		}

		return TourCard{}, result.Error
	}

	return card, nil
}

func (d *TourDAO) FindTourCardsByTourID(ctx context.Context, tourID uint) ([]TourCard, error) {
	var cards []TourCard

	result := d.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("points DESC, earnings DESC, id").
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}

	return cards, nil
}

func (d *TourDAO) FindTourCardByMemberAndSeason(ctx context.Context, memberID, seasonID uint) (TourCard, error) {
	var card TourCard

	result := d.db.WithContext(ctx).
		Where("member_id = ? AND season_id = ?", memberID, seasonID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TourCard{}, ErrTourCardNotFound
		}

		return TourCard{}, result.Error
	}

	return card, nil
}

func (d *TourDAO) UpdateTourCard(ctx context.Context, card TourCard) (TourCard, error) {
	result := d.db.WithContext(ctx).Save(&card)
	if result.Error != nil {
		return TourCard{}, result.Error
	}

	return card, nil
}
