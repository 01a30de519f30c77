package models

import "errors"

// Item represents a tracked item in the "items" collection.
type Item struct {
	// ID is the backend-assigned record identifier.
	ID string `json:"id"`

	// Name is the user-supplied item name.
	Name string `json:"name"`

	// Owner is the ID of the owning user record. The wire name matches
	// the backend's relation field.
	Owner string `json:"User"`

	// Created and Updated are backend-maintained timestamps.
	Created Timestamp `json:"created_at"`
	Updated Timestamp `json:"updated_at"`
}

// Validate reports whether the decoded record has the fields every item
// record must carry.
func (i Item) Validate() error {
	if i.ID == "" {
		return errors.New("item record missing id")
	}
	if i.Name == "" {
		return errors.New("item record missing name")
	}
	if i.Owner == "" {
		return errors.New("item record missing owner")
	}
	return nil
}

// ItemWithPrice pairs an item with its most recent price observation.
// LatestPrice is nil for items that have no price records yet; that is a
// normal state, not an error.
type ItemWithPrice struct {
	Item        Item   `json:"item"`
	LatestPrice *Price `json:"latestPrice,omitempty"`
}
