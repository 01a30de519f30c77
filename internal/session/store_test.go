package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chandra447/item-tracker/internal/models"
)

// signedToken mints a real token so expiry inspection exercises the same
// parsing path as production tokens.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testAuth(t *testing.T, exp time.Time) Auth {
	t.Helper()
	return Auth{
		Token: signedToken(t, exp),
		User:  models.User{ID: "user1", Name: "Test User", Email: "test@example.com"},
	}
}

func TestAuthValid(t *testing.T) {
	t.Run("fresh token", func(t *testing.T) {
		auth := testAuth(t, time.Now().Add(time.Hour))
		if !auth.Valid() {
			t.Error("expected fresh token to be valid")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		auth := testAuth(t, time.Now().Add(-time.Hour))
		if auth.Valid() {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if (Auth{}).Valid() {
			t.Error("expected empty payload to be invalid")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if (Auth{Token: "not-a-jwt"}).Valid() {
			t.Error("expected malformed token to be invalid")
		}
	})
}

func TestStoreSaveNotifiesObservers(t *testing.T) {
	store := NewStore()
	auth := testAuth(t, time.Now().Add(time.Hour))

	var gotAuth Auth
	var gotValid bool
	var fired int
	store.OnChange(func(a Auth, valid bool) {
		gotAuth = a
		gotValid = valid
		fired++
	})

	store.Save(auth)

	if fired != 1 {
		t.Fatalf("expected 1 notification, got %d", fired)
	}
	if !gotValid {
		t.Error("expected a valid notification for a fresh token")
	}
	if gotAuth.User.ID != "user1" {
		t.Errorf("expected user1 in the notification, got %q", gotAuth.User.ID)
	}
	if store.Token() != auth.Token {
		t.Error("expected store to hold the saved token")
	}
}

func TestStoreClearNotifiesWithClearedPayload(t *testing.T) {
	store := NewStore()
	auth := testAuth(t, time.Now().Add(time.Hour))
	store.Save(auth)

	var gotAuth Auth
	var gotValid bool
	store.OnChange(func(a Auth, valid bool) {
		gotAuth = a
		gotValid = valid
	})

	store.Clear()

	if gotValid {
		t.Error("expected an invalid notification on clear")
	}
	if gotAuth.User.ID != "user1" {
		t.Errorf("expected the cleared payload in the notification, got %q", gotAuth.User.ID)
	}
	if store.IsValid() {
		t.Error("expected store to be unauthenticated after clear")
	}
	if store.Token() != "" {
		t.Error("expected empty token after clear")
	}
}

func TestStoreUser(t *testing.T) {
	store := NewStore()
	if _, ok := store.User(); ok {
		t.Error("expected no user on an empty store")
	}

	store.Save(testAuth(t, time.Now().Add(time.Hour)))
	user, ok := store.User()
	if !ok || user.ID != "user1" {
		t.Errorf("expected user1, got ok=%v user=%+v", ok, user)
	}

	store.Save(testAuth(t, time.Now().Add(-time.Hour)))
	if _, ok := store.User(); ok {
		t.Error("expected no user once the token expired")
	}
}
