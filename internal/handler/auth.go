package handler

import (
	"log/slog"
	"net/http"

	"github.com/chandra447/item-tracker/internal/backend"
	"github.com/chandra447/item-tracker/internal/middleware"
	"github.com/chandra447/item-tracker/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateCredentials(req.Email, req.Password); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	auth, err := h.backend.AuthWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case backend.IsBadCredentials(err):
			writeError(w, http.StatusBadRequest, "Invalid email or password")
		case backend.IsAccountDisabled(err):
			writeError(w, http.StatusForbidden, "This account is disabled or unverified")
		default:
			writeBackendError(w, err)
		}
		return
	}

	sess := middleware.GetSession(r.Context())
	if sess == nil {
		sess = h.sessions.NewStore()
	}
	h.sessions.Login(w, sess, session.Auth{Token: auth.Token, User: auth.Record})
	slog.Info("login", "user_id", auth.Record.ID)

	writeJSON(w, http.StatusOK, map[string]any{"user": auth.Record})
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	fields := validateCredentials(req.Email, req.Password)
	for k, v := range validateNewPassword(req.Password, req.PasswordConfirm) {
		fields[k] = v
	}
	if len(req.Name) < minNameLen {
		fields["name"] = "Name must be at least 2 characters"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	user, err := h.backend.CreateUser(r.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		if backend.IsBadCredentials(err) {
			writeError(w, http.StatusBadRequest, "Could not create the account; the email may already be registered")
		} else {
			writeBackendError(w, err)
		}
		return
	}

	auth, err := h.backend.AuthWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		// Account exists but the follow-up login failed; the user can
		// still sign in manually.
		slog.Warn("post-registration login failed", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusCreated, map[string]any{"user": user})
		return
	}

	sess := middleware.GetSession(r.Context())
	if sess == nil {
		sess = h.sessions.NewStore()
	}
	h.sessions.Login(w, sess, session.Auth{Token: auth.Token, User: auth.Record})
	slog.Info("registered", "user_id", auth.Record.ID)

	writeJSON(w, http.StatusCreated, map[string]any{"user": auth.Record})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		sess = h.sessions.NewStore()
	}
	h.sessions.Logout(w, sess)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type resetRequestBody struct {
	Email string `json:"email"`
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if !validEmail(req.Email) {
		writeFieldErrors(w, map[string]string{"email": "Please enter a valid email address"})
		return
	}

	if err := h.backend.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type resetConfirmBody struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmBody
	if !decodeBody(w, r, &req) {
		return
	}

	fields := validateNewPassword(req.Password, req.PasswordConfirm)
	if req.Token == "" {
		fields["token"] = "Reset token is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	if err := h.backend.ConfirmPasswordReset(r.Context(), req.Token, req.Password, req.PasswordConfirm); err != nil {
		if backend.IsBadCredentials(err) {
			writeError(w, http.StatusBadRequest, "Invalid or expired reset token")
			return
		}
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
