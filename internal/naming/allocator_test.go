package naming

import (
	"strings"
	"testing"
)

func fixedNonce(n int) string { return strings.Repeat("x", n) }

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "My App", want: "my-app"},
		{in: "  Hello   World  ", want: "hello-world"},
		{in: "api.example.com", want: "apiexamplecom"},
		{in: "Ünïcode_and_underscores", want: "ncodeandunderscores"},
		{in: "--already-slugged--", want: "already-slugged"},
		{in: "!!!", want: ""},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAllocateWithSeed(t *testing.T) {
	a := NewAllocator(5, 10)
	a.nonce = fixedNonce
	cases := []struct {
		seed string
		want string
	}{
		{seed: "My App", want: "my-app-xxxxx"},
		{seed: "a very long project name", want: "a-very-lon-xxxxx"},
		{seed: "abcdefghi-jkl", want: "abcdefghi-xxxxx"},
		{seed: "", want: "xxxxx"},
		{seed: "###", want: "xxxxx"},
	}
	for _, tc := range cases {
		if got := a.Allocate(tc.seed); got != tc.want {
			t.Errorf("Allocate(%q) = %q, want %q", tc.seed, got, tc.want)
		}
		if err := ValidateID(a.Allocate(tc.seed)); err != nil {
			t.Errorf("Allocate(%q) produced invalid id: %v", tc.seed, err)
		}
	}
}

func TestAllocateStaysWithinMaxIDLength(t *testing.T) {
	a := NewAllocator(5, 40)
	seed := strings.Repeat("registry ", 8)
	id := a.Allocate(seed)
	if len(id) > MaxIDLength {
		t.Fatalf("Allocate(%q) = %q (%d chars), want at most %d", seed, id, len(id), MaxIDLength)
	}
	if err := ValidateID(id); err != nil {
		t.Fatalf("Allocate produced invalid id %q: %v", id, err)
	}
	if !strings.HasPrefix(id, "registry-registry-") {
		t.Fatalf("slug lost: %q", id)
	}
}

func TestAllocateRandom(t *testing.T) {
	a := NewAllocator(0, 0)
	if a.NonceLength != DefaultNonceLength || a.SlugMaxLength != DefaultSlugMaxLength {
		t.Fatalf("defaults not applied: %+v", a)
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := a.Allocate("")
		if len(id) != DefaultNonceLength {
			t.Fatalf("expected length %d, got %q", DefaultNonceLength, id)
		}
		for _, r := range id {
			if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')) {
				t.Fatalf("invalid character %q in %q", r, id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 150 {
		t.Fatalf("too many collisions: %d unique of 200", len(seen))
	}
}

func TestAllocateNilReceiver(t *testing.T) {
	var a *Allocator
	id := a.Allocate("Project")
	if !strings.HasPrefix(id, "project-") {
		t.Fatalf("unexpected id %q", id)
	}
}
