package domain

import "time"

type Tournament struct {
	ID           uint      `json:"id"`
	SeasonID     uint      `json:"season_id"`
	Name         string    `json:"name"`
	Tier         string    `json:"tier"`
	Course       string    `json:"course"`
	Location     string    `json:"location"`
	LogoURL      string    `json:"logo_url"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CurrentRound int       `json:"current_round"`
	LivePlay     bool      `json:"live_play"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Started reports whether picks are locked for the tournament.
func (t *Tournament) Started(now time.Time) bool {
	return !now.Before(t.StartDate)
}
