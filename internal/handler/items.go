package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chandra447/item-tracker/internal/aggregator"
	"github.com/chandra447/item-tracker/internal/backend"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	user, _ := sess.User()

	items, err := h.agg.FetchItems(r.Context(), sess.Token(), user.ID)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	q := r.URL.Query()
	aggregator.SortItems(items, aggregator.ParseSortOption(q.Get("sort")))
	items = aggregator.FilterItems(items, q.Get("search"))

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type createItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req createItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateItem(req.Name, req.Price); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}
	user, _ := sess.User()

	item, err := h.agg.CreateItem(r.Context(), sess.Token(), user.ID, req.Name, req.Price)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": item})
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")

	if err := h.agg.DeleteItem(r.Context(), sess.Token(), itemID); err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) priceHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")

	from, fromErr := parseDateParam(r.URL.Query().Get("from"))
	to, toErr := parseDateParam(r.URL.Query().Get("to"))
	if fromErr != nil || toErr != nil {
		writeError(w, http.StatusBadRequest, "dates must be in YYYY-MM-DD form")
		return
	}

	history, err := h.agg.PriceHistory(r.Context(), sess.Token(), itemID, from, to)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

type addPriceRequest struct {
	Price float64 `json:"price"`
}

func (h *Handler) addPrice(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req addPriceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Price <= 0 {
		writeFieldErrors(w, map[string]string{"price": "Price must be a positive number"})
		return
	}

	price, err := h.agg.AddPrice(r.Context(), sess.Token(), chi.URLParam(r, "id"), req.Price)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"price": price})
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
