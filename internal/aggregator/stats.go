package aggregator

import (
	"sort"
	"time"

	"github.com/chandra447/item-tracker/internal/models"
)

// Stats computes min, max, arithmetic mean and count over a price history.
// An empty history yields the zero value, not an error.
func Stats(prices []models.Price) models.PriceStats {
	if len(prices) == 0 {
		return models.PriceStats{}
	}

	stats := models.PriceStats{
		Min:   prices[0].Price,
		Max:   prices[0].Price,
		Count: len(prices),
	}
	var sum float64
	for _, p := range prices {
		if p.Price < stats.Min {
			stats.Min = p.Price
		}
		if p.Price > stats.Max {
			stats.Max = p.Price
		}
		sum += p.Price
	}
	stats.Average = sum / float64(len(prices))
	return stats
}

// SeriesPoint is one chart point: a calendar date and the average of all
// observations recorded on it.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Series groups prices by calendar date, averages same-day observations
// into a single point and returns the points in chronological order.
func Series(prices []models.Price) []SeriesPoint {
	type bucket struct {
		day   time.Time
		sum   float64
		count int
	}
	// Keyed by formatted date: time.Time map keys compare locations by
	// pointer and would split same-day entries parsed into distinct zones.
	buckets := make(map[string]*bucket)
	for _, p := range prices {
		day := dayOf(p.Created.Time)
		key := day.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day}
			buckets[key] = b
		}
		b.sum += p.Price
		b.count++
	}

	series := make([]SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, SeriesPoint{Date: b.day, Price: b.sum / float64(b.count)})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// dayOf truncates a timestamp to its local calendar date.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
