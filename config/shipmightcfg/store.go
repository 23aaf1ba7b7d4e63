package shipmightcfg

import (
	"fmt"
	"strings"
)

// Backend names an object store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
	BackendKube   Backend = "kube"
)

// StoreURL is a parsed store.url value.
type StoreURL struct {
	Backend Backend
	// Path is the sqlite DSN or the kubeconfig path. Empty selects the backend default.
	Path string
}

// ParseStoreURL parses memory:, sqlite:<dsn>, sqlite3:<dsn> and kube:[<path>].
func ParseStoreURL(s string) (StoreURL, error) {
	scheme, rest, ok := strings.Cut(s, ":")
	if !ok {
		return StoreURL{}, fmt.Errorf("missing scheme in %q", s)
	}
	switch scheme {
	case "memory":
		if rest != "" {
			return StoreURL{}, fmt.Errorf("memory store takes no path, got %q", rest)
		}
		return StoreURL{Backend: BackendMemory}, nil
	case "sqlite", "sqlite3":
		return StoreURL{Backend: BackendSQLite, Path: rest}, nil
	case "kube":
		return StoreURL{Backend: BackendKube, Path: rest}, nil
	}
	return StoreURL{}, fmt.Errorf("unsupported scheme %q", scheme)
}

// DBURL renders the url accepted by rdb.OpenFromURL.
func (u StoreURL) DBURL() string { return "sqlite:" + u.Path }
