package domain

import "time"

type Season struct {
	ID        uint      `json:"id"`
	Year      int       `json:"year"`
	Number    int       `json:"number"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
