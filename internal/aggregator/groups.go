package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/chandra447/item-tracker/internal/models"
)

// DayGroup holds the observations recorded on one calendar date.
type DayGroup struct {
	Date   string         `json:"date"`
	Prices []models.Price `json:"prices"`
}

// MonthGroup holds a month's day groups.
type MonthGroup struct {
	Month string     `json:"month"`
	Days  []DayGroup `json:"days"`
}

// YearGroup holds a year's month groups.
type YearGroup struct {
	Year   int          `json:"year"`
	Months []MonthGroup `json:"months"`
}

// Expanded lists the group keys open by default for progressive
// disclosure: the current year and the current year-month.
type Expanded struct {
	Years  []int    `json:"years"`
	Months []string `json:"months"`
}

// MonthKey builds the key identifying a month group within a year.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%s", year, month)
}

// DefaultExpanded returns the groups expanded on first render.
func DefaultExpanded(now time.Time) Expanded {
	return Expanded{
		Years:  []int{now.Year()},
		Months: []string{MonthKey(now.Year(), now.Month())},
	}
}

// GroupByDate arranges prices into a year -> month -> day hierarchy for
// progressive disclosure, newest observation first at every level.
func GroupByDate(prices []models.Price) []YearGroup {
	sorted := make([]models.Price, len(prices))
	copy(sorted, prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created.After(sorted[j].Created.Time)
	})

	var groups []YearGroup
	for _, price := range sorted {
		t := price.Created.Time
		year := t.Year()
		month := t.Month().String()
		date := t.Format("Monday, January 2, 2006")

		yi := len(groups) - 1
		if yi < 0 || groups[yi].Year != year {
			groups = append(groups, YearGroup{Year: year})
			yi++
		}

		months := groups[yi].Months
		mi := len(months) - 1
		if mi < 0 || months[mi].Month != month {
			groups[yi].Months = append(months, MonthGroup{Month: month})
			mi++
		}

		days := groups[yi].Months[mi].Days
		di := len(days) - 1
		if di < 0 || days[di].Date != date {
			groups[yi].Months[mi].Days = append(days, DayGroup{Date: date})
			di++
		}

		dayGroup := &groups[yi].Months[mi].Days[di]
		dayGroup.Prices = append(dayGroup.Prices, price)
	}
	return groups
}
