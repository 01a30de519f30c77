package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chandra447/item-tracker/internal/models"
)

// Record is any collection record type that can vouch for its own shape
// after decoding.
type Record interface {
	Validate() error
}

// ListResult is one page of a collection listing.
type ListResult[T Record] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// GetList fetches one page of records from a collection, applying the
// optional filter and sort expressions.
func GetList[T Record](ctx context.Context, c *Client, collection string, page, perPage int, opts ListOptions) (ListResult[T], error) {
	query := url.Values{
		"page":    {strconv.Itoa(page)},
		"perPage": {strconv.Itoa(perPage)},
	}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}

	var result ListResult[T]
	if err := c.send(ctx, http.MethodGet, collectionPath(collection), query, nil, &result, collection, "list"); err != nil {
		return ListResult[T]{}, err
	}
	for _, rec := range result.Items {
		if err := rec.Validate(); err != nil {
			return ListResult[T]{}, fmt.Errorf("invalid %s record: %w", collection, err)
		}
	}
	return result, nil
}

// GetOne fetches a single record by ID.
func GetOne[T Record](ctx context.Context, c *Client, collection, id string) (T, error) {
	var rec T
	if err := c.send(ctx, http.MethodGet, collectionPath(collection)+"/"+url.PathEscape(id), nil, nil, &rec, collection, "get"); err != nil {
		return rec, err
	}
	if err := rec.Validate(); err != nil {
		return rec, fmt.Errorf("invalid %s record: %w", collection, err)
	}
	return rec, nil
}

// Create inserts a record and returns the backend's decoded copy.
func Create[T Record](ctx context.Context, c *Client, collection string, fields map[string]any) (T, error) {
	var rec T
	if err := c.send(ctx, http.MethodPost, collectionPath(collection), nil, fields, &rec, collection, "create"); err != nil {
		return rec, err
	}
	if err := rec.Validate(); err != nil {
		return rec, fmt.Errorf("invalid %s record: %w", collection, err)
	}
	return rec, nil
}

// Update patches a record and returns the backend's decoded copy.
func Update[T Record](ctx context.Context, c *Client, collection, id string, fields map[string]any) (T, error) {
	var rec T
	if err := c.send(ctx, http.MethodPatch, collectionPath(collection)+"/"+url.PathEscape(id), nil, fields, &rec, collection, "update"); err != nil {
		return rec, err
	}
	if err := rec.Validate(); err != nil {
		return rec, fmt.Errorf("invalid %s record: %w", collection, err)
	}
	return rec, nil
}

// Delete removes a record by ID.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.send(ctx, http.MethodDelete, collectionPath(collection)+"/"+url.PathEscape(id), nil, nil, nil, collection, "delete")
}

// Typed convenience wrappers over the generic operations.

// ListItems lists item records.
func (c *Client) ListItems(ctx context.Context, page, perPage int, opts ListOptions) ([]models.Item, error) {
	result, err := GetList[models.Item](ctx, c, "items", page, perPage, opts)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// CreateItem creates an item owned by the given user.
func (c *Client) CreateItem(ctx context.Context, name, ownerID string) (models.Item, error) {
	return Create[models.Item](ctx, c, "items", map[string]any{
		"name": name,
		"User": ownerID,
	})
}

// DeleteItem removes an item record. Associated prices are NOT removed by
// the backend; callers must delete them first (see aggregator.DeleteItem).
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.Delete(ctx, "items", id)
}

// ListPrices lists price records.
func (c *Client) ListPrices(ctx context.Context, page, perPage int, opts ListOptions) ([]models.Price, error) {
	result, err := GetList[models.Price](ctx, c, "prices", page, perPage, opts)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// CreatePrice appends a price observation to an item.
func (c *Client) CreatePrice(ctx context.Context, itemID string, amount float64) (models.Price, error) {
	return Create[models.Price](ctx, c, "prices", map[string]any{
		"item":  itemID,
		"price": amount,
	})
}

// DeletePrice removes a price record.
func (c *Client) DeletePrice(ctx context.Context, id string) error {
	return c.Delete(ctx, "prices", id)
}

// GetUser fetches a user record by ID.
func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	return GetOne[models.User](ctx, c, "users", id)
}

// CreateUser registers a new account. Password handling happens entirely
// on the backend.
func (c *Client) CreateUser(ctx context.Context, name, email, password, passwordConfirm string) (models.User, error) {
	return Create[models.User](ctx, c, "users", map[string]any{
		"name":            name,
		"email":           email,
		"password":        password,
		"passwordConfirm": passwordConfirm,
	})
}

// UpdateUser patches a user record; callers use it for profile edits and
// the old-password/new-password change flow.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (models.User, error) {
	return Update[models.User](ctx, c, "users", id, fields)
}
