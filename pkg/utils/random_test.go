package utils

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	for _, n := range []int{1, 10, 64} {
		s, err := RandomString(n)
		if err != nil {
			t.Fatalf("RandomString(%d): %v", n, err)
		}
		if len(s) != n {
			t.Fatalf("RandomString(%d) length = %d", n, len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("unexpected rune %q in %q", r, s)
			}
		}
	}
}

func TestRandomString_InvalidLength(t *testing.T) {
	if _, err := RandomString(0); err == nil {
		t.Fatalf("expected error for zero length")
	}
}

func TestRandomString_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s, err := RandomString(10)
		if err != nil {
			t.Fatalf("RandomString: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate value %q after %d draws", s, i)
		}
		seen[s] = struct{}{}
	}
}
