// Package kubeconfig loads the kubeconfig the kube store backend runs with and
// reduces it to the single context that is actually used.
package kubeconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
	"sigs.k8s.io/yaml"
)

// Options selects and rewrites the context kept by Load.
type Options struct {
	// Context picks a context by name instead of current-context.
	Context string
	// Rename renames the kept context, cluster and user.
	Rename string
	// Namespace overrides the default namespace of the kept context.
	Namespace string
}

// LoadFile is Load on the contents of path.
func LoadFile(path string, opts Options) (*clientcmdapi.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kubeconfig %s: %w", path, err)
	}
	return Load(data, opts)
}

// Load parses kubeconfig bytes and returns a self-contained config holding one
// context with its cluster and user. Referenced certificate and key files are
// inlined.
func Load(data []byte, opts Options) (*clientcmdapi.Config, error) {
	cfg, err := clientcmd.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse kubeconfig: %w", err)
	}
	name, err := pickContext(cfg, opts.Context)
	if err != nil {
		return nil, err
	}
	cfg.CurrentContext = name
	if err := clientcmdapi.MinifyConfig(cfg); err != nil {
		return nil, fmt.Errorf("minify kubeconfig: %w", err)
	}
	if err := clientcmdapi.FlattenConfig(cfg); err != nil {
		return nil, fmt.Errorf("flatten kubeconfig: %w", err)
	}
	if opts.Namespace != "" {
		cfg.Contexts[name].Namespace = opts.Namespace
	}
	if opts.Rename != "" {
		rename(cfg, opts.Rename)
	}
	return cfg, nil
}

func pickContext(cfg *clientcmdapi.Config, want string) (string, error) {
	if want == "" {
		want = cfg.CurrentContext
	}
	if want == "" {
		if len(cfg.Contexts) != 1 {
			return "", errors.New("kubeconfig has no current context")
		}
		for name := range cfg.Contexts {
			want = name
		}
	}
	if cfg.Contexts[want] == nil {
		return "", fmt.Errorf("context %q not found in kubeconfig", want)
	}
	return want, nil
}

// rename expects a minified config.
func rename(cfg *clientcmdapi.Config, to string) {
	kctx := cfg.Contexts[cfg.CurrentContext]
	cluster, user := cfg.Clusters[kctx.Cluster], cfg.AuthInfos[kctx.AuthInfo]

	cfg.CurrentContext = to
	cfg.Contexts = map[string]*clientcmdapi.Context{to: kctx}
	cfg.Clusters = map[string]*clientcmdapi.Cluster{}
	cfg.AuthInfos = map[string]*clientcmdapi.AuthInfo{}
	if cluster != nil {
		kctx.Cluster = to
		cfg.Clusters[to] = cluster
	}
	if user != nil {
		kctx.AuthInfo = to
		cfg.AuthInfos[to] = user
	}
}

// RESTConfig builds a REST config from the current context of cfg.
func RESTConfig(cfg *clientcmdapi.Config) (*rest.Config, error) {
	rc, err := clientcmd.NewDefaultClientConfig(*cfg, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("build REST config: %w", err)
	}
	return rc, nil
}

// Print writes cfg as yaml (the kubeconfig file format) or json.
func Print(w io.Writer, cfg *clientcmdapi.Config, format string) error {
	data, err := clientcmd.Write(*cfg)
	if err != nil {
		return fmt.Errorf("serialize kubeconfig: %w", err)
	}
	switch format {
	case "", "yaml":
	case "json":
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return fmt.Errorf("convert kubeconfig to json: %w", err)
		}
	default:
		return fmt.Errorf("unsupported kubeconfig format %q (yaml|json)", format)
	}
	_, err = w.Write(data)
	return err
}
