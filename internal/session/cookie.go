package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed name of the auth cookie read by the route gate.
const CookieName = "pb_auth"

const fallbackCookieTTL = 7 * 24 * time.Hour

// Codec serializes the session payload into the auth cookie and back.
// The cookie is deliberately NOT HttpOnly: the route gate inspects it on
// every page navigation.
type Codec struct {
	// Secure marks the cookie Secure; set in production.
	Secure bool
}

// Write serializes the payload into the auth cookie. The cookie expires
// with the token when the exp claim is readable, otherwise after a fixed
// fallback window.
func (c Codec) Write(w http.ResponseWriter, auth Auth) {
	payload, err := json.Marshal(auth)
	if err != nil {
		return
	}

	expires := time.Now().Add(fallbackCookieTTL)
	if exp := tokenExpiry(auth.Token); exp != nil {
		expires = *exp
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		Expires:  expires,
		Secure:   c.Secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read decodes the auth cookie from a request. Missing, empty or malformed
// cookie data yields (Auth{}, false) silently; initialization never fails
// on bad stored state.
func (c Codec) Read(r *http.Request) (Auth, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Auth{}, false
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Auth{}, false
	}
	var auth Auth
	if err := json.Unmarshal([]byte(raw), &auth); err != nil {
		return Auth{}, false
	}
	if auth.Token == "" {
		return Auth{}, false
	}
	return auth, true
}

// Clear expires the auth cookie.
func (c Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}
