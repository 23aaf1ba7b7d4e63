package shipmightcfg

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shipmight/shipmight/internal/naming"
)

// Environment variable names
const (
	ConfigEnvKey    = "SHIPMIGHT_CONFIG"
	DBURLEnvKey     = "SHIPMIGHT_DB_URL"
	LogFormatEnvKey = "SHIPMIGHT_LOG_FORMAT"
)

const (
	DefaultConfigFile      = "shipmight.yml"
	DefaultVersion         = "v1"
	DefaultStoreURL        = "kube:"
	DefaultSystemNamespace = "shipmight"
	DefaultUserAgent       = "shipmight"
	DefaultQPS             = 20
	DefaultBurst           = 50
	DefaultLogFormat       = "human"
	DefaultLogLevel        = "INFO"
)

// Load reads a YAML file from the given path and returns a deserialized Root.
// It performs no validation beyond YAML decoding.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return &cfg, nil
}

// Resolve loads the configuration for a CLI run. path wins over
// SHIPMIGHT_CONFIG, which wins over ./shipmight.yml. A missing default file is
// not an error; an explicitly named one is. Environment overrides and defaults
// are applied, then the result is validated.
func Resolve(path string) (*Root, error) {
	explicit := path != ""
	if !explicit {
		if v := os.Getenv(ConfigEnvKey); v != "" {
			path, explicit = v, true
		} else {
			path = DefaultConfigFile
		}
	}

	cfg := &Root{}
	loaded, err := Load(path)
	switch {
	case err == nil:
		cfg = loaded
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SHIPMIGHT_DB_URL and SHIPMIGHT_LOG_FORMAT.
func (r *Root) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(DBURLEnvKey); ok && v != "" {
		r.Store.URL = v
	}
	if v, ok := lookup(LogFormatEnvKey); ok && v != "" {
		r.Logging.Format = v
	}
}

// ApplyDefaults fills every unset field.
func (r *Root) ApplyDefaults() {
	if r.Version == "" {
		r.Version = DefaultVersion
	}
	if r.Store.URL == "" {
		r.Store.URL = DefaultStoreURL
	}
	if r.Store.SystemNamespace == "" {
		r.Store.SystemNamespace = DefaultSystemNamespace
	}
	if r.Naming.NonceLength == 0 {
		r.Naming.NonceLength = naming.DefaultNonceLength
	}
	if r.Naming.SlugMaxLength == 0 {
		r.Naming.SlugMaxLength = naming.DefaultSlugMaxLength
	}
	if r.Kube.UserAgent == "" {
		r.Kube.UserAgent = DefaultUserAgent
	}
	if r.Kube.QPS == 0 {
		r.Kube.QPS = DefaultQPS
	}
	if r.Kube.Burst == 0 {
		r.Kube.Burst = DefaultBurst
	}
	if r.Logging.Format == "" {
		r.Logging.Format = DefaultLogFormat
	}
	if r.Logging.Level == "" {
		r.Logging.Level = DefaultLogLevel
	}
}
