package aggregator

import (
	"testing"
	"time"

	"github.com/chandra447/item-tracker/internal/models"
)

func itemWithPrice(id, name string, created time.Time, latest *models.Price) models.ItemWithPrice {
	return models.ItemWithPrice{
		Item: models.Item{
			ID:      id,
			Name:    name,
			Owner:   "user1",
			Created: models.NewTimestamp(created),
		},
		LatestPrice: latest,
	}
}

func TestSortItems_ByCreated(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []models.ItemWithPrice{
		itemWithPrice("a", "old", base, nil),
		itemWithPrice("b", "new", base.Add(48*time.Hour), nil),
		itemWithPrice("c", "mid", base.Add(24*time.Hour), nil),
	}

	SortItems(items, SortCreated)

	want := []string{"b", "c", "a"}
	for i, id := range want {
		if items[i].Item.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].Item.ID)
		}
	}
}

func TestSortItems_ByPricePutsPricelessLast(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	older := price("p1", 10, base)
	newer := price("p2", 20, base.Add(24*time.Hour))

	items := []models.ItemWithPrice{
		itemWithPrice("np1", "first priceless", base.Add(72*time.Hour), nil),
		itemWithPrice("a", "older price", base, &older),
		itemWithPrice("np2", "second priceless", base.Add(96*time.Hour), nil),
		itemWithPrice("b", "newer price", base, &newer),
	}

	SortItems(items, SortPrice)

	want := []string{"b", "a", "np1", "np2"}
	for i, id := range want {
		if items[i].Item.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].Item.ID)
		}
	}
}

func TestSortItems_AllPricelessKeepsOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []models.ItemWithPrice{
		itemWithPrice("x", "x", base, nil),
		itemWithPrice("y", "y", base.Add(time.Hour), nil),
		itemWithPrice("z", "z", base.Add(2*time.Hour), nil),
	}

	SortItems(items, SortPrice)

	want := []string{"x", "y", "z"}
	for i, id := range want {
		if items[i].Item.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].Item.ID)
		}
	}
}

func TestFilterItems(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []models.ItemWithPrice{
		itemWithPrice("a", "Olive Oil", base, nil),
		itemWithPrice("b", "Rice", base, nil),
		itemWithPrice("c", "Sunflower oil", base, nil),
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := FilterItems(items, "OIL")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].Item.ID != "a" || got[1].Item.ID != "c" {
			t.Errorf("expected matches in input order, got %s, %s", got[0].Item.ID, got[1].Item.ID)
		}
	})

	t.Run("blank term keeps everything", func(t *testing.T) {
		if got := FilterItems(items, "   "); len(got) != 3 {
			t.Errorf("expected all items, got %d", len(got))
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := FilterItems(items, "butter"); len(got) != 0 {
			t.Errorf("expected no items, got %d", len(got))
		}
	})
}

func TestParseSortOption(t *testing.T) {
	if ParseSortOption("price") != SortPrice {
		t.Error("expected price option")
	}
	if ParseSortOption("") != SortCreated {
		t.Error("expected created default")
	}
	if ParseSortOption("bogus") != SortCreated {
		t.Error("expected created default for unknown value")
	}
}
