package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourCard is a member's seasonal registration within a tour. Earnings,
// points, position and the counters are aggregates recomputed by the
// standings update; they are never written by request handlers directly.
type TourCard struct {
	ID          uint            `json:"id"`
	MemberID    uint            `json:"member_id"`
	TourID      uint            `json:"tour_id"`
	SeasonID    uint            `json:"season_id"`
	DisplayName string          `json:"display_name"`
	Earnings    decimal.Decimal `json:"earnings"`
	Points      int             `json:"points"`
	Position    string          `json:"position"`
	Wins        int             `json:"wins"`
	TopTens     int             `json:"top_tens"`
	Appearances int             `json:"appearances"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
