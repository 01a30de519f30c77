// Package session keeps the authentication token synchronized across its
// three homes: the browser cookie, the SQLite fallback store and the
// in-process mirror. Login and logout transitions update all of them
// through a single change observer so they can never drift apart.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chandra447/item-tracker/internal/models"
)

// Auth is the serialized session payload: the backend token plus the user
// record it was issued for. The JSON shape is exactly what goes into the
// auth cookie.
type Auth struct {
	Token string      `json:"token"`
	User  models.User `json:"record"`
}

// Valid reports whether the payload holds a token that has not expired.
// Only the exp claim is inspected; the signature belongs to the backend
// and is verified there on every data request.
func (a Auth) Valid() bool {
	return a.Token != "" && tokenFresh(a.Token)
}

func tokenFresh(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}

// Store is the in-memory half of the synchronizer: the authoritative copy
// of the current session for one request. Observers registered with
// OnChange fire on every Save and Clear; on Clear they receive the payload
// that was just discarded so mirrors can be cleaned up by user ID.
type Store struct {
	mu       sync.RWMutex
	auth     Auth
	onChange []func(auth Auth, valid bool)
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// OnChange registers an observer. Observers run synchronously, outside the
// store's lock, in registration order.
func (s *Store) OnChange(fn func(auth Auth, valid bool)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Save replaces the session payload and notifies observers.
func (s *Store) Save(auth Auth) {
	s.mu.Lock()
	s.auth = auth
	observers := s.onChange
	s.mu.Unlock()

	valid := auth.Valid()
	for _, fn := range observers {
		fn(auth, valid)
	}
}

// Clear discards the session payload and notifies observers with the
// payload that was cleared.
func (s *Store) Clear() {
	s.mu.Lock()
	prev := s.auth
	s.auth = Auth{}
	observers := s.onChange
	s.mu.Unlock()

	for _, fn := range observers {
		fn(prev, false)
	}
}

// Auth returns the current payload.
func (s *Store) Auth() Auth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// Token returns the current token, empty when unauthenticated.
func (s *Store) Token() string {
	return s.Auth().Token
}

// IsValid reports whether the store holds an unexpired session.
func (s *Store) IsValid() bool {
	return s.Auth().Valid()
}

// User returns the current user record when the session is valid.
func (s *Store) User() (models.User, bool) {
	auth := s.Auth()
	if !auth.Valid() {
		return models.User{}, false
	}
	return auth.User, true
}
