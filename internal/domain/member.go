package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Member struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      string          `json:"role"`
	Account   decimal.Decimal `json:"account"`
	Friends   []uint          `json:"friends"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (m *Member) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}

	return m.FirstName + " " + m.LastName
}
