// Package naming generates and validates the identifiers used as object names
// and exact-match label values.
package naming

import (
	"strings"

	utilrand "k8s.io/apimachinery/pkg/util/rand"
)

const (
	DefaultNonceLength   = 5
	DefaultSlugMaxLength = 32
)

// Allocator hands out ids. Uniqueness is probabilistic: collisions are only as
// unlikely as NonceLength makes them.
type Allocator struct {
	NonceLength   int
	SlugMaxLength int

	// nonce is replaced in tests to get deterministic ids.
	nonce func(n int) string
}

// NewAllocator returns an Allocator; non-positive arguments fall back to defaults.
func NewAllocator(nonceLength, slugMaxLength int) *Allocator {
	if nonceLength <= 0 {
		nonceLength = DefaultNonceLength
	}
	if slugMaxLength <= 0 {
		slugMaxLength = DefaultSlugMaxLength
	}
	return &Allocator{NonceLength: nonceLength, SlugMaxLength: slugMaxLength, nonce: utilrand.String}
}

// Allocate returns "<slug>-<nonce>" when seed yields a non-empty slug, otherwise
// the nonce alone. The slug is shortened further when the id would exceed
// MaxIDLength.
func (a *Allocator) Allocate(seed string) string {
	if a == nil {
		a = NewAllocator(0, 0)
	}
	gen := a.nonce
	if gen == nil {
		gen = utilrand.String
	}
	nonce := gen(a.NonceLength)
	slug := Slugify(seed)
	if limit := min(a.SlugMaxLength, MaxIDLength-1-len(nonce)); len(slug) > limit {
		slug = strings.TrimRight(slug[:max(limit, 0)], "-")
	}
	if slug == "" {
		return nonce
	}
	return slug + "-" + nonce
}

// Slugify lowercases s, turns whitespace into hyphens and drops everything
// outside [a-z0-9-]. Runs of hyphens collapse and edge hyphens are trimmed so
// the result is always a legal DNS label prefix.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '\t' || r == '\n':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
