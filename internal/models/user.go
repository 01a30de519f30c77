package models

import "errors"

// User represents a registered account in the "users" collection.
//
// The backend owns the account entirely, including the password hash; this
// application only ever reads the record or updates it through an
// authenticated session.
type User struct {
	// ID is the backend-assigned record identifier.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique, used for login).
	Email string `json:"email"`

	// Avatar is an optional profile picture file name.
	Avatar string `json:"avatar,omitempty"`

	// Created and Updated are backend-maintained timestamps.
	Created Timestamp `json:"created_at"`
	Updated Timestamp `json:"updated_at"`
}

// Validate reports whether the decoded record has the fields every user
// record must carry.
func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("user record missing id")
	}
	if u.Email == "" {
		return errors.New("user record missing email")
	}
	return nil
}
