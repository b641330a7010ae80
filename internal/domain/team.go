package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamSize is the number of golfers a team must pick for a tournament.
const TeamSize = 10

type Team struct {
	ID           uint            `json:"id"`
	TourCardID   uint            `json:"tour_card_id"`
	TournamentID uint            `json:"tournament_id"`
	GolferIDs    []int64         `json:"golfer_ids"`
	Earnings     decimal.Decimal `json:"earnings"`
	Points       int             `json:"points"`
	Score        int             `json:"score"`
	Position     string          `json:"position"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Won reports whether the team finished alone at the top of a tournament.
func (t *Team) Won() bool {
	return t.Position == "1"
}

func (t *Team) TopTen() bool {
	pos := t.Position
	if len(pos) > 1 && pos[0] == 'T' {
		pos = pos[1:]
	}
	switch pos {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10":
		return true
	}

	return false
}
