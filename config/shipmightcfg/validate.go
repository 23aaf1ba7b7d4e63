package shipmightcfg

import (
	"fmt"

	"github.com/shipmight/shipmight/internal/logging"
	"github.com/shipmight/shipmight/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Version != DefaultVersion {
		return fmt.Errorf("version: unsupported version %q", r.Version)
	}
	if _, err := ParseStoreURL(r.Store.URL); err != nil {
		return fmt.Errorf("store.url: %w", err)
	}
	if err := naming.ValidateID(r.Store.SystemNamespace); err != nil {
		return fmt.Errorf("store.systemNamespace: %w", err)
	}
	if err := r.Naming.validate(); err != nil {
		return fmt.Errorf("naming: %w", err)
	}
	if r.Kube.QPS < 0 || r.Kube.Burst < 0 {
		return fmt.Errorf("kube: qps and burst must not be negative")
	}
	switch r.Logging.Format {
	case "human", "text", "json":
	default:
		return fmt.Errorf("logging.format: unsupported format %q", r.Logging.Format)
	}
	if _, err := logging.ParseLevel(r.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (n Naming) validate() error {
	if n.NonceLength < 3 || n.NonceLength > 16 {
		return fmt.Errorf("nonceLength must be between 3 and 16, got %d", n.NonceLength)
	}
	if n.SlugMaxLength < 1 || n.SlugMaxLength > 40 {
		return fmt.Errorf("slugMaxLength must be between 1 and 40, got %d", n.SlugMaxLength)
	}
	if n.SlugMaxLength+1+n.NonceLength > naming.MaxIDLength {
		return fmt.Errorf("slugMaxLength + 1 + nonceLength must not exceed %d, got %d", naming.MaxIDLength, n.SlugMaxLength+1+n.NonceLength)
	}
	return nil
}
