package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

var (
	ErrMemberEmailExists = repository.ErrMemberEmailExists
	ErrWrongPassword     = errors.New("wrong password")
)

type AuthMemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindByEmail(ctx context.Context, email string) (domain.Member, error)
}

type WelcomeSender interface {
	SendWelcome(member domain.Member) error
}

type AuthService struct {
	repo  AuthMemberRepository
	email WelcomeSender
}

func NewAuthService(repo AuthMemberRepository, email WelcomeSender) *AuthService {
	return &AuthService{
		repo:  repo,
		email: email,
	}
}

func (s *AuthService) Signup(ctx context.Context, member domain.Member) (domain.Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(member.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Member{}, err
	}
	member.Password = string(hash)
	if member.Role == "" {
		member.Role = domain.RoleMember
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	// A failed welcome mail never fails the signup.
	if s.email != nil {
		if err = s.email.SendWelcome(created); err != nil {
			zap.L().Warn("failed to send welcome email", zap.Uint("member_id", created.ID), zap.Error(err))
		}
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Member, error) {
	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}

		return domain.Member{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return domain.Member{}, ErrWrongPassword
	}

	return member, nil
}
