package naming

import (
	"fmt"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

// MaxIDLength bounds allocated and referenced ids. Relation labels embed an id
// after "linked-registry-id." in the 63-character name part of the key.
const MaxIDLength = 44

const (
	usernameMaxLength = 63
	hostnameMaxLength = 253
)

func validateDNS1123Label(name string, maximum int, labelKind string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", labelKind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s exceeds %d characters", labelKind, maximum)
	}
	if errs := utilvalidation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid %s: %s", labelKind, strings.Join(errs, ", "))
	}
	return nil
}

// ValidateID checks that id can be used verbatim as an object name, a label
// value and the suffix of a relation label key.
func ValidateID(id string) error {
	return validateDNS1123Label(id, MaxIDLength, "id")
}

// ValidateUsername checks that a username is usable as an exact-match label value.
func ValidateUsername(name string) error {
	return validateDNS1123Label(name, usernameMaxLength, "username")
}

// ValidateHostname accepts DNS subdomains and a single leading wildcard label.
func ValidateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("hostname must not be empty")
	}
	if len(host) > hostnameMaxLength {
		return fmt.Errorf("hostname exceeds %d characters", hostnameMaxLength)
	}
	if strings.HasPrefix(host, "*.") {
		if errs := utilvalidation.IsWildcardDNS1123Subdomain(host); len(errs) > 0 {
			return fmt.Errorf("invalid hostname: %s", strings.Join(errs, ", "))
		}
		return nil
	}
	if errs := utilvalidation.IsDNS1123Subdomain(host); len(errs) > 0 {
		return fmt.Errorf("invalid hostname: %s", strings.Join(errs, ", "))
	}
	return nil
}
