package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"backend layout", `"2025-03-10 09:30:00.000Z"`, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2025-03-10T09:30:00Z"`, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
		{"null", `null`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !ts.Time.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, ts.Time)
			}
		})
	}

	t.Run("garbage", func(t *testing.T) {
		var ts Timestamp
		if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestTimestampMarshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"2025-03-10 09:30:00.000Z"` {
		t.Errorf("unexpected encoding %s", out)
	}

	zero, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(zero) != `""` {
		t.Errorf("expected empty string for the zero time, got %s", zero)
	}
}

func TestRecordValidation(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		if err := (User{ID: "u1", Email: "a@b.c"}).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if err := (User{Email: "a@b.c"}).Validate(); err == nil {
			t.Error("expected an error for a missing id")
		}
		if err := (User{ID: "u1"}).Validate(); err == nil {
			t.Error("expected an error for a missing email")
		}
	})

	t.Run("item", func(t *testing.T) {
		if err := (Item{ID: "i1", Name: "Rice", Owner: "u1"}).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if err := (Item{ID: "i1", Name: "Rice"}).Validate(); err == nil {
			t.Error("expected an error for a missing owner")
		}
	})

	t.Run("price", func(t *testing.T) {
		if err := (Price{ID: "p1", Item: "i1", Price: 9.5}).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if err := (Price{ID: "p1", Item: "i1", Price: -1}).Validate(); err == nil {
			t.Error("expected an error for a negative amount")
		}
	})
}
