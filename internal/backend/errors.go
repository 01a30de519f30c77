package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the backend. Data keeps the raw
// payload so callers can show it behind a diagnostic detail panel.
type APIError struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

func decodeAPIError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		raw = nil
	}
	apiErr := &APIError{Status: resp.StatusCode, Data: raw}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}

func statusIs(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsBadCredentials reports a 400 from the auth endpoint, which the backend
// uses for a wrong email/password pair.
func IsBadCredentials(err error) bool { return statusIs(err, http.StatusBadRequest) }

// IsAccountDisabled reports a 403, which the backend uses for disabled or
// unverified accounts.
func IsAccountDisabled(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports a 404 for a missing record.
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }
