package queue

import (
	"testing"
)

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Status
	}{
		{"accepted", 0, StatusAccepted},
		{"new", 1, StatusPendingNew},
		{"updated", 2, StatusPendingUpdate},
		{"declined marker", 3, StatusDeclined},
		{"negative marker", -1, StatusDeclined},
		{"legacy large marker", 99, StatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromCode(tt.code); got != tt.want {
				t.Errorf("StatusFromCode(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestStatusCode_roundTrip(t *testing.T) {
	for _, s := range []Status{StatusAccepted, StatusPendingNew, StatusPendingUpdate} {
		code, ok := s.Code()
		if !ok {
			t.Fatalf("Status %v has no code", s)
		}
		if got := StatusFromCode(code); got != s {
			t.Errorf("round trip of %v via code %d = %v", s, code, got)
		}
	}
}

func TestStatusCode_declinedHasNoEncoding(t *testing.T) {
	if _, ok := StatusDeclined.Code(); ok {
		t.Error("StatusDeclined.Code() ok = true, want false")
	}
}

func TestFilterRange(t *testing.T) {
	tests := []struct {
		filter Filter
		lo, hi int
	}{
		{FilterAll, 1, 2},
		{FilterAccepted, 0, 0},
		{FilterQueued, 0, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			lo, hi, ok := tt.filter.Range()
			if !ok {
				t.Fatalf("Range() ok = false for %q", tt.filter)
			}
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("Range() = [%d,%d], want [%d,%d]", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestParseFilter_rejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "declined", "ALL", "pending"} {
		if _, ok := ParseFilter(s); ok {
			t.Errorf("ParseFilter(%q) ok = true, want false", s)
		}
	}
}

func TestKindCodes_invertible(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 7 {
		t.Fatalf("Kinds() returned %d kinds, want 7", len(kinds))
	}
	for _, k := range kinds {
		got, ok := KindByCode(k.Code())
		if !ok {
			t.Fatalf("KindByCode(%d) not found for kind %q", k.Code(), k)
		}
		if got != k {
			t.Errorf("KindByCode(%d) = %q, want %q", k.Code(), got, k)
		}
	}
}

func TestKindByCode_unknown(t *testing.T) {
	for _, code := range []int{0, 8, -1, 100} {
		if k, ok := KindByCode(code); ok {
			t.Errorf("KindByCode(%d) = %q, want miss", code, k)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("sprites"); !ok || k != KindSprites {
		t.Errorf("ParseKind(sprites) = %q, %v", k, ok)
	}
	if _, ok := ParseKind("movies"); ok {
		t.Error("ParseKind(movies) ok = true, want false")
	}
}
