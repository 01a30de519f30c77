// Package aggregator implements the dashboard's data derivation: item
// listings enriched with latest prices, sort/filter views, price history
// statistics, chart series and the best-effort cascade delete.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chandra447/item-tracker/internal/backend"
	"github.com/chandra447/item-tracker/internal/models"
)

const (
	itemPageSize       = 100
	historyPageSize    = 100
	deleteBatchPerPage = 1000
)

// Aggregator derives dashboard views from the collection backend.
type Aggregator struct {
	client *backend.Client
}

// New creates an aggregator on top of the shared backend client.
func New(client *backend.Client) *Aggregator {
	return &Aggregator{client: client}
}

// FetchItems returns up to 100 items owned by the user, newest first, each
// paired with its most recent price. The per-item price lookups fan out
// concurrently with no fan-out limit; a failed lookup degrades to "no
// price" and never fails the listing.
func (a *Aggregator) FetchItems(ctx context.Context, token, userID string) ([]models.ItemWithPrice, error) {
	cli := a.client.WithToken(token)

	items, err := cli.ListItems(ctx, 1, itemPageSize, backend.ListOptions{
		Filter: fmt.Sprintf("User = %q", userID),
		Sort:   "-created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	out := make([]models.ItemWithPrice, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		out[i] = models.ItemWithPrice{Item: item}
		wg.Add(1)
		go func(i int, itemID string) {
			defer wg.Done()
			prices, err := cli.ListPrices(ctx, 1, 1, backend.ListOptions{
				Filter: fmt.Sprintf("item = %q", itemID),
				Sort:   "-created_at",
			})
			if err != nil {
				slog.Debug("latest price lookup failed", "item_id", itemID, "error", err)
				return
			}
			if len(prices) > 0 {
				price := prices[0]
				out[i].LatestPrice = &price
			}
		}(i, item.ID)
	}
	wg.Wait()

	return out, nil
}

// CreateItem creates an item and its initial price observation.
func (a *Aggregator) CreateItem(ctx context.Context, token, userID, name string, price float64) (models.ItemWithPrice, error) {
	cli := a.client.WithToken(token)

	item, err := cli.CreateItem(ctx, name, userID)
	if err != nil {
		return models.ItemWithPrice{}, fmt.Errorf("create item: %w", err)
	}
	initial, err := cli.CreatePrice(ctx, item.ID, price)
	if err != nil {
		return models.ItemWithPrice{}, fmt.Errorf("create initial price: %w", err)
	}
	return models.ItemWithPrice{Item: item, LatestPrice: &initial}, nil
}

// AddPrice appends a price observation to an item.
func (a *Aggregator) AddPrice(ctx context.Context, token, itemID string, price float64) (models.Price, error) {
	return a.client.WithToken(token).CreatePrice(ctx, itemID, price)
}

// DeleteItem removes an item and every price referencing it: the prices
// first (bounded at 1000 per request), then the item. A failed price
// delete is logged and skipped rather than aborting; the protocol is
// best-effort, not atomic, and partial failure is not rolled back.
func (a *Aggregator) DeleteItem(ctx context.Context, token, itemID string) error {
	cli := a.client.WithToken(token)

	prices, err := cli.ListPrices(ctx, 1, deleteBatchPerPage, backend.ListOptions{
		Filter: fmt.Sprintf("item = %q", itemID),
	})
	if err != nil {
		return fmt.Errorf("list prices for deletion: %w", err)
	}

	for _, price := range prices {
		if err := cli.DeletePrice(ctx, price.ID); err != nil {
			slog.Warn("price delete failed during item deletion",
				"item_id", itemID, "price_id", price.ID, "error", err)
		}
	}

	if err := cli.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// History is everything the item view needs for one price history.
type History struct {
	Prices   []models.Price    `json:"prices"`
	Stats    models.PriceStats `json:"stats"`
	Series   []SeriesPoint     `json:"series"`
	Groups   []YearGroup       `json:"groups"`
	Expanded Expanded          `json:"expanded"`
}

// PriceHistory fetches an item's prices, optionally bounded by a date
// range (inclusive start; the end bound is extended by one day so the end
// date itself is included), and derives statistics, the chart series and
// the hierarchical date groups.
func (a *Aggregator) PriceHistory(ctx context.Context, token, itemID string, from, to *time.Time) (History, error) {
	cli := a.client.WithToken(token)

	filter := fmt.Sprintf("item = %q", itemID)
	if from != nil {
		filter += fmt.Sprintf(" && created_at >= %q", from.UTC().Format(models.TimeLayout))
	}
	if to != nil {
		end := to.AddDate(0, 0, 1)
		filter += fmt.Sprintf(" && created_at <= %q", end.UTC().Format(models.TimeLayout))
	}

	prices, err := cli.ListPrices(ctx, 1, historyPageSize, backend.ListOptions{
		Filter: filter,
		Sort:   "created_at",
	})
	if err != nil {
		return History{}, fmt.Errorf("list prices: %w", err)
	}

	return History{
		Prices:   prices,
		Stats:    Stats(prices),
		Series:   Series(prices),
		Groups:   GroupByDate(prices),
		Expanded: DefaultExpanded(time.Now()),
	}, nil
}
