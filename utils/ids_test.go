package utils

import (
	"testing"
)

func TestGenerateIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 16 {
			t.Fatalf("len = %d, want 16", len(id))
		}
		for _, r := range id {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				t.Fatalf("unexpected character %q in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestGenerateShortIDShape(t *testing.T) {
	if id := GenerateShortID(); len(id) != 8 {
		t.Fatalf("len = %d, want 8", len(id))
	}
}
