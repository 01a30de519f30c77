package middleware

import (
	"context"
	"net/http"

	"github.com/chandra447/item-tracker/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SessionKey is the context key for the request's session store.
	SessionKey contextKey = "session"
	// RequestIDKey is the context key for the request ID.
	RequestIDKey contextKey = "request_id"
)

// GetSession extracts the session store from the context. Returns nil
// when the request did not pass through the Session middleware.
func GetSession(ctx context.Context) *session.Store {
	st, _ := ctx.Value(SessionKey).(*session.Store)
	return st
}

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Session hydrates an auth store from the request's cookie and attaches it
// to the context. Junk cookie data leaves the store unauthenticated; the
// request always proceeds.
func Session(sync *session.Synchronizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := sync.Hydrate(r)
			ctx := context.WithValue(r.Context(), SessionKey, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
