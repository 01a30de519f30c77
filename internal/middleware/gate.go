package middleware

import (
	"net/http"
	"strings"

	"github.com/chandra447/item-tracker/internal/session"
)

// Paths gated on page navigation. Prefix-matched, first rule wins.
var (
	protectedPaths = []string{"/dashboard", "/items", "/profile"}
	authPaths      = []string{"/login", "/register", "/forgot-password", "/reset-password"}

	// The gate never touches static assets, the favicon or API routes.
	skipPrefixes = []string{"/static/", "/favicon.ico", "/api/", "/metrics", "/healthz"}
)

// Gate redirects page navigations based purely on the presence of a
// non-empty auth cookie: authenticated visitors leave the auth pages for
// the dashboard, unauthenticated visitors leave protected pages for the
// login page, everything else passes through.
//
// This is a UX convenience layer, not security: a forged or stale cookie
// passes it. Real authorization is re-checked by the backend on every data
// operation via the session token.
func Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		authenticated := hasAuthCookie(r)

		if authenticated && hasPrefixIn(path, authPaths) {
			http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
			return
		}
		if !authenticated && hasPrefixIn(path, protectedPaths) {
			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func hasAuthCookie(r *http.Request) bool {
	cookie, err := r.Cookie(session.CookieName)
	return err == nil && cookie.Value != ""
}

func hasPrefixIn(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
