package objstore

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/labels"
)

// Requirement is one predicate of a label selector: exact match, or existence
// when Exists is set.
type Requirement struct {
	Key    string
	Value  string
	Exists bool
}

// Eq requires label key to equal value.
func Eq(key, value string) Requirement { return Requirement{Key: key, Value: value} }

// Has requires label key to be present.
func Has(key string) Requirement { return Requirement{Key: key, Exists: true} }

// QueryString returns "key=value" or "key".
func (r Requirement) QueryString() string {
	if r.Exists {
		return r.Key
	}
	return r.Key + "=" + r.Value
}

// Selector is an AND of requirements.
type Selector []Requirement

// String returns the comma-joined query form, in requirement order.
func (s Selector) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, r.QueryString())
	}
	return strings.Join(parts, ",")
}

// Compile parses the selector with the Kubernetes selector grammar so a
// selector accepted by in-process stores is also accepted by the API server.
func (s Selector) Compile() (labels.Selector, error) {
	sel, err := labels.Parse(s.String())
	if err != nil {
		return nil, fmt.Errorf("invalid label selector %q: %w", s.String(), err)
	}
	return sel, nil
}

// Validate reports whether the selector compiles.
func (s Selector) Validate() error {
	_, err := s.Compile()
	return err
}

// Matches reports whether set satisfies every requirement. An invalid
// selector matches nothing.
func (s Selector) Matches(set map[string]string) bool {
	sel, err := s.Compile()
	if err != nil {
		return false
	}
	return sel.Matches(labels.Set(set))
}
