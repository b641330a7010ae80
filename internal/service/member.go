package service

import (
	"context"
	"fmt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var ErrMemberNotFound = repository.ErrMemberNotFound

type MemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	FindAll(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member domain.Member) (domain.Member, error)
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

func (s *MemberService) GetAllMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return members, nil
}

// UpdateProfile changes the fields a member may edit about themselves.
// Email, role, account balance and the password hash are untouchable here.
func (s *MemberService) UpdateProfile(ctx context.Context, id uint, firstName, lastName string, friends []uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	member.FirstName = firstName
	member.LastName = lastName
	member.Friends = friends

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
