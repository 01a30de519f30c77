package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/chandra447/item-tracker/internal/aggregator"
	"github.com/chandra447/item-tracker/internal/backend"
	mw "github.com/chandra447/item-tracker/internal/middleware"
	"github.com/chandra447/item-tracker/internal/models"
	"github.com/chandra447/item-tracker/internal/session"
)

// newTestApp wires the full request path the way the composition root
// does, pointed at a fake collection backend.
func newTestApp(t *testing.T, backendHandler http.Handler) http.Handler {
	t.Helper()
	server := httptest.NewServer(backendHandler)
	t.Cleanup(server.Close)

	client := backend.New(server.URL)
	sessions := session.NewSynchronizer(session.Codec{}, nil, session.NewMemStore())
	h := New(client, aggregator.New(client), sessions)

	r := chi.NewRouter()
	r.Use(mw.Gate)
	r.Use(mw.Session(sessions))
	h.Register(r)
	return r
}

func signedTestToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// authCookie builds a valid auth cookie for user u1.
func authCookie(t *testing.T) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	session.Codec{}.Write(rec, session.Auth{
		Token: signedTestToken(t, time.Now().Add(time.Hour)),
		User:  models.User{ID: "u1", Name: "Test User", Email: "test@example.com"},
	})
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("auth cookie not written")
	return nil
}

func doJSON(t *testing.T, app http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, http.NotFoundHandler())
	rec := doJSON(t, app, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestStatus(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":401,"message":"auth required"}`, http.StatusUnauthorized)
		}))
		rec := doJSON(t, app, http.MethodGet, "/api/status", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body map[string]string
		decodeResponse(t, rec, &body)
		if body["status"] != "connected" {
			t.Errorf("expected connected, got %q", body["status"])
		}
		if body["url"] == "" {
			t.Error("expected the backend URL in the response")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":500,"message":"down"}`, http.StatusInternalServerError)
		}))
		rec := doJSON(t, app, http.MethodGet, "/api/status", "", nil)
		if rec.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", rec.Code)
		}
	})
}
