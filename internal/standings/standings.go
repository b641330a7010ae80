// Package standings recomputes the seasonal aggregates on tour cards from
// their per-tournament team results and assigns ranked positions within a
// tour. Ties share a "T"-prefixed position; the rank itself is the count
// of strictly better entries plus one.
package standings

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

// Entry is one tour card's standing within a tour.
type Entry struct {
	TourCardID  uint
	Earnings    decimal.Decimal
	Points      int
	Wins        int
	TopTens     int
	Appearances int
	Position    string
}

// Aggregate reduces a card's team results into a standing entry.
// A nil or empty team slice yields a zeroed entry for the card.
func Aggregate(tourCardID uint, teams []domain.Team) Entry {
	entry := Entry{
		TourCardID: tourCardID,
		Earnings:   decimal.Zero,
	}

	for _, team := range teams {
		entry.Earnings = entry.Earnings.Add(team.Earnings)
		entry.Points += team.Points
		entry.Appearances++
		if team.Won() {
			entry.Wins++
		}
		if team.TopTen() {
			entry.TopTens++
		}
	}

	return entry
}

// Rank fills in the Position of every entry and returns the entries
// ordered by points descending (earnings, then card id, break the order
// of equals for display purposes only; tied cards keep identical
// position strings).
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	for i := range ranked {
		greater := 0
		tied := 0
		for j := range ranked {
			if ranked[j].Points > ranked[i].Points {
				greater++
			}
			if ranked[j].Points == ranked[i].Points {
				tied++
			}
		}

		position := strconv.Itoa(greater + 1)
		if tied > 1 {
			position = "T" + position
		}
		ranked[i].Position = position
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		if !ranked[i].Earnings.Equal(ranked[j].Earnings) {
			return ranked[i].Earnings.GreaterThan(ranked[j].Earnings)
		}

		return ranked[i].TourCardID < ranked[j].TourCardID
	})

	return ranked
}
