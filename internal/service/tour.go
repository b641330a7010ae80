package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var (
	ErrTourNotFound     = repository.ErrTourNotFound
	ErrTourCardNotFound = repository.ErrTourCardNotFound
	ErrTourCardExists   = repository.ErrTourCardExists
	ErrWrongSeason      = errors.New("tour does not belong to the current season")
)

type TourRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tour, error)
	FindBySeasonID(ctx context.Context, seasonID uint) ([]domain.Tour, error)
	CreateTourCard(ctx context.Context, card domain.TourCard) (domain.TourCard, error)
	FindTourCardsByTourID(ctx context.Context, tourID uint) ([]domain.TourCard, error)
	FindTourCardByMemberAndSeason(ctx context.Context, memberID, seasonID uint) (domain.TourCard, error)
}

type CurrentSeasonProvider interface {
	GetCurrentSeason(ctx context.Context) (domain.Season, error)
}

type TourCardFeeCharger interface {
	ChargeTourCardFee(ctx context.Context, member domain.Member, tour domain.Tour) (domain.Transaction, error)
}

type TourService struct {
	repo    TourRepository
	seasons CurrentSeasonProvider
	fees    TourCardFeeCharger
}

func NewTourService(repo TourRepository, seasons CurrentSeasonProvider, fees TourCardFeeCharger) *TourService {
	return &TourService{
		repo:    repo,
		seasons: seasons,
		fees:    fees,
	}
}

// GetCurrentTours lists the tours of the current season.
func (s *TourService) GetCurrentTours(ctx context.Context) ([]domain.Tour, error) {
	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.seasons.GetCurrentSeason -> %w", err)
	}

	tours, err := s.repo.FindBySeasonID(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySeasonID -> %w", err)
	}

	return tours, nil
}

// GetStandings returns the tour's cards in standings order.
func (s *TourService) GetStandings(ctx context.Context, tourID uint) ([]domain.TourCard, error) {
	if _, err := s.repo.FindByID(ctx, tourID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	cards, err := s.repo.FindTourCardsByTourID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTourCardsByTourID -> %w", err)
	}

	return cards, nil
}

// RegisterTourCard signs a member onto a tour for the current season,
// charging the tour's buy-in against their account. A member holds at
// most one card per tour.
func (s *TourService) RegisterTourCard(ctx context.Context, member domain.Member, tourID uint, displayName string) (domain.TourCard, error) {
	tour, err := s.repo.FindByID(ctx, tourID)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("s.seasons.GetCurrentSeason -> %w", err)
	}
	if tour.SeasonID != season.ID {
		return domain.TourCard{}, ErrWrongSeason
	}

	if displayName == "" {
		displayName = member.FullName()
	}

	card, err := s.repo.CreateTourCard(ctx, domain.TourCard{
		MemberID:    member.ID,
		TourID:      tour.ID,
		SeasonID:    season.ID,
		DisplayName: displayName,
	})
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("s.repo.CreateTourCard -> %w", err)
	}

	if _, err = s.fees.ChargeTourCardFee(ctx, member, tour); err != nil {
		return domain.TourCard{}, fmt.Errorf("s.fees.ChargeTourCardFee -> %w", err)
	}

	return card, nil
}

// GetCurrentTourCard finds the member's card for the current season.
func (s *TourService) GetCurrentTourCard(ctx context.Context, memberID uint) (domain.TourCard, error) {
	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("s.seasons.GetCurrentSeason -> %w", err)
	}

	card, err := s.repo.FindTourCardByMemberAndSeason(ctx, memberID, season.ID)
	if err != nil {
		return domain.TourCard{}, fmt.Errorf("s.repo.FindTourCardByMemberAndSeason -> %w", err)
	}

	return card, nil
}
