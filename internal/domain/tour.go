package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tour struct {
	ID           uint            `json:"id"`
	SeasonID     uint            `json:"season_id"`
	Name         string          `json:"name"`
	ShortForm    string          `json:"short_form"`
	LogoURL      string          `json:"logo_url"`
	BuyIn        decimal.Decimal `json:"buy_in"`
	PlayoffSpots int             `json:"playoff_spots"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
