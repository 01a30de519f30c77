package models

import "errors"

// Price represents a single price observation in the "prices" collection.
type Price struct {
	// ID is the backend-assigned record identifier.
	ID string `json:"id"`

	// Item is the ID of the item this observation belongs to.
	Item string `json:"item"`

	// Price is the observed amount.
	Price float64 `json:"price"`

	// Created is the observation time; prices are never edited afterwards.
	Created Timestamp `json:"created_at"`
	Updated Timestamp `json:"updated_at"`
}

// Validate reports whether the decoded record has the fields every price
// record must carry.
func (p Price) Validate() error {
	if p.ID == "" {
		return errors.New("price record missing id")
	}
	if p.Item == "" {
		return errors.New("price record missing item")
	}
	if p.Price < 0 {
		return errors.New("price record has negative amount")
	}
	return nil
}

// PriceStats summarizes a price history. A history with no observations
// yields the zero value rather than an error.
type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
