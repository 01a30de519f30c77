package session

import (
	"context"
	"log/slog"
	"net/http"
)

// Synchronizer wires a request's auth store to the cookie, the SQLite
// fallback store and the in-process mirror. Every login writes all three;
// every logout clears all three, whether or not they held anything.
type Synchronizer struct {
	codec Codec
	local *LocalStore
	mem   *MemStore
}

// NewSynchronizer builds a synchronizer. local may be nil when no fallback
// persistence is configured.
func NewSynchronizer(codec Codec, local *LocalStore, mem *MemStore) *Synchronizer {
	return &Synchronizer{codec: codec, local: local, mem: mem}
}

// NewStore returns an auth store whose changes are mirrored into the
// fallback stores. Cookie writes need a ResponseWriter and happen in
// Login/Logout instead.
func (s *Synchronizer) NewStore() *Store {
	st := NewStore()
	st.OnChange(func(auth Auth, valid bool) {
		ctx := context.Background()
		if valid {
			s.mem.Save(auth)
			if s.local != nil {
				if err := s.local.Save(ctx, auth); err != nil {
					slog.Warn("session mirror write failed", "user_id", auth.User.ID, "error", err)
				}
			}
			return
		}
		if auth.User.ID == "" {
			return
		}
		s.mem.Delete(auth.User.ID)
		if s.local != nil {
			if err := s.local.Delete(ctx, auth.User.ID); err != nil {
				slog.Warn("session mirror delete failed", "user_id", auth.User.ID, "error", err)
			}
		}
	})
	return st
}

// Hydrate builds the session store for a request from its auth cookie.
// Malformed cookie data leaves the store unauthenticated; hydration never
// fails. An expired cookie payload is still saved so its user identity is
// known for cleanup, after first trying to recover a fresh session for
// that user from the mirrors (a newer login elsewhere in the process may
// have written one).
func (s *Synchronizer) Hydrate(r *http.Request) *Store {
	st := s.NewStore()
	auth, ok := s.codec.Read(r)
	if !ok {
		return st
	}
	if !auth.Valid() {
		if recovered, found := s.recover(auth.User.ID); found {
			st.Save(recovered)
			return st
		}
	}
	st.Save(auth)
	return st
}

// recover looks the user up in the in-process mirror, then the fallback
// store, and returns the first unexpired session found.
func (s *Synchronizer) recover(userID string) (Auth, bool) {
	if userID == "" {
		return Auth{}, false
	}
	if auth, ok := s.mem.Load(userID); ok && auth.Valid() {
		return auth, true
	}
	if s.local != nil {
		if auth, ok := s.local.Load(context.Background(), userID); ok && auth.Valid() {
			return auth, true
		}
	}
	return Auth{}, false
}

// Login records a fresh authentication: store, mirrors and cookie.
func (s *Synchronizer) Login(w http.ResponseWriter, st *Store, auth Auth) {
	st.Save(auth)
	s.codec.Write(w, auth)
}

// Logout clears every copy of the session unconditionally: the store and
// its mirrors, then the cookie.
func (s *Synchronizer) Logout(w http.ResponseWriter, st *Store) {
	st.Clear()
	s.codec.Clear(w)
}
