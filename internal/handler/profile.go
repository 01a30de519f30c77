package handler

import (
	"log/slog"
	"net/http"

	"github.com/chandra447/item-tracker/internal/backend"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	user, _ := sess.User()

	// Fetch a fresh copy rather than serving the cookie's snapshot.
	fresh, err := h.backend.WithToken(sess.Token()).GetUser(r.Context(), user.ID)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "account no longer exists")
			return
		}
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": fresh})
}

type updateMeRequest struct {
	Name            string `json:"name"`
	OldPassword     string `json:"oldPassword"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req updateMeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	changingPassword := req.Password != "" || req.OldPassword != "" || req.PasswordConfirm != ""
	fields := map[string]string{}
	if changingPassword {
		fields = validateNewPassword(req.Password, req.PasswordConfirm)
		if req.OldPassword == "" {
			fields["oldPassword"] = "Current password is required"
		}
	}
	if req.Name != "" && len(req.Name) < minNameLen {
		fields["name"] = "Name must be at least 2 characters"
	}
	if req.Name == "" && !changingPassword {
		fields["name"] = "Nothing to update"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	update := map[string]any{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if changingPassword {
		update["oldPassword"] = req.OldPassword
		update["password"] = req.Password
		update["passwordConfirm"] = req.PasswordConfirm
	}

	user, _ := sess.User()
	updated, err := h.backend.WithToken(sess.Token()).UpdateUser(r.Context(), user.ID, update)
	if err != nil {
		if backend.IsBadCredentials(err) {
			writeError(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		writeBackendError(w, err)
		return
	}

	if changingPassword {
		// The backend invalidates the session token on password change;
		// clear every stored copy and make the user sign in again.
		h.sessions.Logout(w, sess)
		slog.Info("password changed", "user_id", user.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": updated})
}
