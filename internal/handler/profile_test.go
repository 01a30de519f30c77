package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetMeReturnsFreshRecord(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/collections/users/records/u1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","name":"Renamed Elsewhere","email":"test@example.com"}`))
	}))

	rec := doJSON(t, app, http.MethodGet, "/api/me", "", authCookie(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	decodeResponse(t, rec, &body)
	if body.User.Name != "Renamed Elsewhere" {
		t.Errorf("expected the backend's copy, not the cookie snapshot, got %q", body.User.Name)
	}
}

func TestUpdateMeName(t *testing.T) {
	var patched map[string]any
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&patched)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","name":"New Name","email":"test@example.com"}`))
	}))

	rec := doJSON(t, app, http.MethodPatch, "/api/me",
		`{"name":"New Name"}`, authCookie(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if patched["name"] != "New Name" {
		t.Errorf("expected only the name in the patch, got %v", patched)
	}
	if _, ok := patched["password"]; ok {
		t.Error("expected no password fields in a name-only update")
	}
	if c := responseCookie(rec, "pb_auth"); c != nil {
		t.Error("a name change must not touch the session")
	}
}

func TestUpdateMePasswordChangeEndsSession(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","name":"Test User","email":"test@example.com"}`))
	}))

	rec := doJSON(t, app, http.MethodPatch, "/api/me",
		`{"oldPassword":"secret123","password":"newsecret","passwordConfirm":"newsecret"}`,
		authCookie(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookie := responseCookie(rec, "pb_auth")
	if cookie == nil || cookie.MaxAge != -1 {
		t.Error("expected the session cookie to be expired after a password change")
	}
}

func TestUpdateMeWrongOldPassword(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":400,"message":"Failed to update record."}`, http.StatusBadRequest)
	}))

	rec := doJSON(t, app, http.MethodPatch, "/api/me",
		`{"oldPassword":"wrong","password":"newsecret","passwordConfirm":"newsecret"}`,
		authCookie(t))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeResponse(t, rec, &body)
	if body.Error != "Current password is incorrect" {
		t.Errorf("unexpected error message %q", body.Error)
	}
}

func TestUpdateMeValidation(t *testing.T) {
	app := newTestApp(t, http.NotFoundHandler())

	t.Run("nothing to update", func(t *testing.T) {
		rec := doJSON(t, app, http.MethodPatch, "/api/me", `{}`, authCookie(t))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("password change needs the current password", func(t *testing.T) {
		rec := doJSON(t, app, http.MethodPatch, "/api/me",
			`{"password":"newsecret","passwordConfirm":"newsecret"}`, authCookie(t))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var body struct {
			Fields map[string]string `json:"fields"`
		}
		decodeResponse(t, rec, &body)
		if body.Fields["oldPassword"] == "" {
			t.Error("expected an oldPassword field error")
		}
	})
}
