package handler

import (
	"net/mail"
	"strings"
)

// Local validation rules, applied before any network call. The backend
// enforces its own rules again server-side.
const (
	minPasswordLen = 6
	minNameLen     = 2
)

func validEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validateCredentials(email, password string) map[string]string {
	fields := map[string]string{}
	if !validEmail(email) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(password) < minPasswordLen {
		fields["password"] = "Password must be at least 6 characters"
	}
	return fields
}

func validateNewPassword(password, passwordConfirm string) map[string]string {
	fields := map[string]string{}
	if len(password) < minPasswordLen {
		fields["password"] = "Password must be at least 6 characters"
	}
	if password != passwordConfirm {
		fields["passwordConfirm"] = "Passwords do not match"
	}
	return fields
}

func validateItem(name string, price float64) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "Item name is required"
	}
	if price <= 0 {
		fields["price"] = "Price must be a positive number"
	}
	return fields
}
