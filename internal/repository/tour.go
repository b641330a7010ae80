package repository

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
)

var (
	ErrTourNotFound     = dao.ErrTourNotFound
	ErrTourCardNotFound = dao.ErrTourCardNotFound
	ErrTourCardExists   = dao.ErrTourCardExists
)

type TourDAO interface {
	Insert(ctx context.Context, tour dao.Tour) (dao.Tour, error)
	FindByID(ctx context.Context, id uint) (dao.Tour, error)
	FindBySeasonID(ctx context.Context, seasonID uint) ([]dao.Tour, error)
	InsertTourCard(ctx context.Context, card dao.TourCard) (dao.TourCard, error)
	FindTourCardByID(ctx context.Context, id uint) (dao.TourCard, error)
	FindTourCardsByTourID(ctx context.Context, tourID uint) ([]dao.TourCard, error)
	FindTourCardByMemberAndSeason(ctx context.Context, memberID, seasonID uint) (dao.TourCard, error)
	UpdateTourCard(ctx context.Context, card dao.TourCard) (dao.TourCard, error)
}

type TourRepository struct {
	dao TourDAO
}

func NewTourRepository(dao TourDAO) *TourRepository {
	return &TourRepository{
		dao: dao,
	}
}

func (r *TourRepository) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	created, err := r.dao.Insert(ctx, r.tourDomainToDAO(tour))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.tourDAOToDomain(created), nil
}

func (r *TourRepository) FindByID(ctx context.Context, id uint) (domain.Tour, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.tourDAOToDomain(found), nil
}

func (r *TourRepository) FindBySeasonID(ctx context.Context, seasonID uint) ([]domain.Tour, error) {
	found, err := r.dao.FindBySeasonID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySeasonID -> %w", err)
	}

	tours := make([]domain.Tour, len(found))
	for i, t := range found {
		tours[i] = r.tourDAOToDomain(t)
	}

	return tours, nil
}

func (r *TourRepository) CreateTourCard(ctx context.Context, card domain.TourCard) (domain.TourCard, error) {
	created, err := r.dao.InsertTourCard(ctx, r.cardDomainToDAO(card))
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("r.dao.InsertTourCard -> %w", err)
	}

	return r.cardDAOToDomain(created), nil
}

func (r *TourRepository) FindTourCardByID(ctx context.Context, id uint) (domain.TourCard, error) {
	found, err := r.dao.FindTourCardByID(ctx, id)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("r.dao.FindTourCardByID -> %w", err)
	}

	return r.cardDAOToDomain(found), nil
}

func (r *TourRepository) FindTourCardsByTourID(ctx context.Context, tourID uint) ([]domain.TourCard, error) {
	found, err := r.dao.FindTourCardsByTourID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTourCardsByTourID -> %w", err)
	}

	cards := make([]domain.TourCard, len(found))
	for i, c := range found {
		cards[i] = r.cardDAOToDomain(c)
	}

	return cards, nil
}

func (r *TourRepository) FindTourCardByMemberAndSeason(ctx context.Context, memberID, seasonID uint) (domain.TourCard, error) {
	found, err := r.dao.FindTourCardByMemberAndSeason(ctx, memberID, seasonID)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("r.dao.FindTourCardByMemberAndSeason -> %w", err)
	}

	return r.cardDAOToDomain(found), nil
}

func (r *TourRepository) UpdateTourCard(ctx context.Context, card domain.TourCard) (domain.TourCard, error) {
	updated, err := r.dao.UpdateTourCard(ctx, r.cardDomainToDAO(card))
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("r.dao.UpdateTourCard -> %w", err)
	}

	return r.cardDAOToDomain(updated), nil
}

func (r *TourRepository) tourDAOToDomain(t dao.Tour) domain.Tour {
	return domain.Tour{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Name:         t.Name,
		ShortForm:    t.ShortForm,
		LogoURL:      t.LogoURL,
		BuyIn:        t.BuyIn,
		PlayoffSpots: t.PlayoffSpots,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TourRepository) tourDomainToDAO(t domain.Tour) dao.Tour {
	return dao.Tour{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Name:         t.Name,
		ShortForm:    t.ShortForm,
		LogoURL:      t.LogoURL,
		BuyIn:        t.BuyIn,
		PlayoffSpots: t.PlayoffSpots,
	}
}

func (r *TourRepository) cardDAOToDomain(c dao.TourCard) domain.TourCard {
	return domain.TourCard{
		ID:          c.ID,
		MemberID:    c.MemberID,
		TourID:      c.TourID,
		SeasonID:    c.SeasonID,
		DisplayName: c.DisplayName,
		Earnings:    c.Earnings,
		Points:      c.Points,
		Position:    c.Position,
		Wins:        c.Wins,
		TopTens:     c.TopTens,
		Appearances: c.Appearances,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *TourRepository) cardDomainToDAO(c domain.TourCard) dao.TourCard {
	return dao.TourCard{
		ID:          c.ID,
		MemberID:    c.MemberID,
		TourID:      c.TourID,
		SeasonID:    c.SeasonID,
		DisplayName: c.DisplayName,
		Earnings:    c.Earnings,
		Points:      c.Points,
		Position:    c.Position,
		Wins:        c.Wins,
		TopTens:     c.TopTens,
		Appearances: c.Appearances,
	}
}
