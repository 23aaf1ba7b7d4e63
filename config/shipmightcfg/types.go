// Package shipmightcfg holds the shipmight.yml configuration model.
package shipmightcfg

// Root is the top-level configuration document.
type Root struct {
	Version string  `yaml:"version"`
	Store   Store   `yaml:"store"`
	Naming  Naming  `yaml:"naming,omitempty"`
	Kube    Kube    `yaml:"kube,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Store selects the object store backend.
type Store struct {
	// URL is memory:, sqlite:<dsn> or kube:[<kubeconfig path>].
	URL             string `yaml:"url"`
	SystemNamespace string `yaml:"systemNamespace,omitempty"`
}

// Naming tunes the identifier allocator.
type Naming struct {
	NonceLength   int `yaml:"nonceLength,omitempty"`
	SlugMaxLength int `yaml:"slugMaxLength,omitempty"`
}

// Kube tunes the Kubernetes client used by the kube backend.
type Kube struct {
	// Context selects a kubeconfig context when store.url names a kubeconfig file.
	Context      string  `yaml:"context,omitempty"`
	UserAgent    string  `yaml:"userAgent,omitempty"`
	QPS          float32 `yaml:"qps,omitempty"`
	Burst        int     `yaml:"burst,omitempty"`
	IngressClass string  `yaml:"ingressClass,omitempty"`
}

// Logging configures the process logger.
type Logging struct {
	Format string `yaml:"format,omitempty"` // human (default), text, json
	Level  string `yaml:"level,omitempty"`  // DEBUG, INFO (default), WARN, ERROR
}
