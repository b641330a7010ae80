package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
)

type fakeAuthMemberRepo struct {
	members map[string]domain.Member
	nextID  uint
}

func newFakeAuthMemberRepo() *fakeAuthMemberRepo {
	return &fakeAuthMemberRepo{
		members: make(map[string]domain.Member),
		nextID:  1,
	}
}

func (r *fakeAuthMemberRepo) Create(_ context.Context, member domain.Member) (domain.Member, error) {
	if _, ok := r.members[member.Email]; ok {
		return domain.Member{}, repository.ErrMemberEmailExists
	}

	member.ID = r.nextID
	r.nextID++
	r.members[member.Email] = member

	return member, nil
}

func (r *fakeAuthMemberRepo) FindByEmail(_ context.Context, email string) (domain.Member, error) {
	member, ok := r.members[email]
	if !ok {
		return domain.Member{}, repository.ErrMemberNotFound
	}

	return member, nil
}

type fakeWelcomeSender struct {
	sent []domain.Member
	err  error
}

func (s *fakeWelcomeSender) SendWelcome(member domain.Member) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, member)

	return nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		repo := newFakeAuthMemberRepo()
		email := &fakeWelcomeSender{}
		svc := NewAuthService(repo, email)

		created, err := svc.Signup(context.Background(), domain.Member{
			Email:     "duncan@example.com",
			Password:  "golfing123",
			FirstName: "Duncan",
			LastName:  "Smith",
		})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, domain.RoleMember, created.Role)
		assert.NotEqual(t, "golfing123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("golfing123")))
		assert.Len(t, email.sent, 1)
	})

	t.Run("keeps an explicit role", func(t *testing.T) {
		repo := newFakeAuthMemberRepo()
		svc := NewAuthService(repo, &fakeWelcomeSender{})

		created, err := svc.Signup(context.Background(), domain.Member{
			Email:    "admin@example.com",
			Password: "golfing123",
			Role:     domain.RoleAdmin,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.RoleAdmin, created.Role)
	})

	t.Run("returns ErrMemberEmailExists for a duplicate email", func(t *testing.T) {
		repo := newFakeAuthMemberRepo()
		svc := NewAuthService(repo, &fakeWelcomeSender{})

		_, err := svc.Signup(context.Background(), domain.Member{Email: "duncan@example.com", Password: "golfing123"})
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), domain.Member{Email: "duncan@example.com", Password: "golfing456"})
		assert.ErrorIs(t, err, ErrMemberEmailExists)
	})

	t.Run("a failed welcome email does not fail the signup", func(t *testing.T) {
		repo := newFakeAuthMemberRepo()
		email := &fakeWelcomeSender{err: errors.New("resend is down")}
		svc := NewAuthService(repo, email)

		created, err := svc.Signup(context.Background(), domain.Member{Email: "duncan@example.com", Password: "golfing123"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})
}

func TestAuthService_Login(t *testing.T) {
	newSignedUpService := func(t *testing.T) *AuthService {
		t.Helper()

		svc := NewAuthService(newFakeAuthMemberRepo(), &fakeWelcomeSender{})
		_, err := svc.Signup(context.Background(), domain.Member{Email: "duncan@example.com", Password: "golfing123"})
		require.NoError(t, err)

		return svc
	}

	t.Run("returns the member for valid credentials", func(t *testing.T) {
		svc := newSignedUpService(t)

		member, err := svc.Login(context.Background(), "duncan@example.com", "golfing123")
		require.NoError(t, err)
		assert.Equal(t, "duncan@example.com", member.Email)
	})

	t.Run("returns ErrWrongPassword for a bad password", func(t *testing.T) {
		svc := newSignedUpService(t)

		_, err := svc.Login(context.Background(), "duncan@example.com", "wrong")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("returns ErrMemberNotFound for an unknown email", func(t *testing.T) {
		svc := newSignedUpService(t)

		_, err := svc.Login(context.Background(), "nobody@example.com", "golfing123")
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}
