package store

import (
	"strings"
	"testing"
	"time"
)

func TestNewID_FormatAndOrder(t *testing.T) {
	prev := ""
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26 chars, got %d (%q)", len(id), id)
		}
		for _, c := range id {
			if !strings.ContainsRune(crockford, c) {
				t.Fatalf("unexpected character %q in %q", c, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if id <= prev {
			t.Fatalf("expected %q > %q", id, prev)
		}
		prev = id
	}
}

func TestNewID_TimestampPrefix(t *testing.T) {
	before := uint64(time.Now().UnixMilli())
	id := NewID()
	after := uint64(time.Now().UnixMilli())

	var ts uint64
	for _, c := range id[:10] {
		ts = ts<<5 | uint64(strings.IndexRune(crockford, c))
	}
	if ts < before || ts > after {
		t.Errorf("expected timestamp in [%d, %d], got %d", before, after, ts)
	}
}

func TestEncodeCrockford_Bounds(t *testing.T) {
	var zero, full [16]byte
	for i := range full {
		full[i] = 0xFF
	}
	if got := encodeCrockford(zero); got != strings.Repeat("0", 26) {
		t.Errorf("unexpected zero encoding %q", got)
	}
	if got := encodeCrockford(full); got != "7"+strings.Repeat("Z", 25) {
		t.Errorf("unexpected full encoding %q", got)
	}
}
