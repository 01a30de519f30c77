// Package handler exposes the web surface: the JSON API the presentation
// layer talks to, plus thin HTML page shells so the route gate has
// navigations to act on.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chandra447/item-tracker/internal/aggregator"
	"github.com/chandra447/item-tracker/internal/backend"
	"github.com/chandra447/item-tracker/internal/middleware"
	"github.com/chandra447/item-tracker/internal/session"
)

// Handler carries the injected collaborators for every route.
type Handler struct {
	backend  *backend.Client
	agg      *aggregator.Aggregator
	sessions *session.Synchronizer
}

// New builds a handler. All dependencies are constructed by the
// composition root and injected; nothing here is lazily initialized.
func New(client *backend.Client, agg *aggregator.Aggregator, sessions *session.Synchronizer) *Handler {
	return &Handler{backend: client, agg: agg, sessions: sessions}
}

// Register mounts every route on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/register", h.register)
		r.Post("/logout", h.logout)
		r.Post("/password-reset/request", h.requestPasswordReset)
		r.Post("/password-reset/confirm", h.confirmPasswordReset)

		r.Get("/me", h.getMe)
		r.Patch("/me", h.updateMe)

		r.Get("/items", h.listItems)
		r.Post("/items", h.createItem)
		r.Delete("/items/{id}", h.deleteItem)
		r.Get("/items/{id}/prices", h.priceHistory)
		r.Post("/items/{id}/prices", h.addPrice)

		r.Get("/status", h.status)
	})

	// Page shells for gated navigation.
	r.Get("/", h.rootPage)
	r.Get("/login", h.loginPage)
	r.Get("/register", h.registerPage)
	r.Get("/forgot-password", h.forgotPasswordPage)
	r.Get("/reset-password", h.resetPasswordPage)
	r.Get("/dashboard", h.dashboardPage)
	r.Get("/profile", h.profilePage)
}

// errorResponse is the uniform error body. Fields carries per-field
// validation messages; Detail keeps the backend's raw diagnostic payload
// for the collapsible detail panel.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Detail json.RawMessage   `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}

// writeBackendError surfaces a failed backend call as a generic
// retry-suggesting message with the raw payload attached.
func writeBackendError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: "Could not reach the server. Please try again."}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		resp.Detail = apiErr.Data
	}
	writeJSON(w, http.StatusBadGateway, resp)
}

// requireSession pulls a valid session off the context or answers 401.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	sess := middleware.GetSession(r.Context())
	if sess == nil || !sess.IsValid() {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return sess, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
