package kube

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Client is the cluster connection shared by the object store, the workload
// sources and the release source.
type Client struct {
	// RESTConfig is nil when the client wraps a fake clientset.
	RESTConfig *rest.Config
	Clientset  kubernetes.Interface
}

// Options tunes the REST client. Zero values fall back to the defaults below.
type Options struct {
	UserAgent string
	QPS       float32
	Burst     int
}

const (
	defaultQPS   = 20
	defaultBurst = 50
)

func (o *Options) apply(cfg *rest.Config) *rest.Config {
	cfg = rest.CopyConfig(cfg)
	cfg.QPS, cfg.Burst = defaultQPS, defaultBurst
	if o == nil {
		return cfg
	}
	if o.QPS > 0 {
		cfg.QPS = o.QPS
	}
	if o.Burst > 0 {
		cfg.Burst = o.Burst
	}
	if o.UserAgent != "" {
		cfg.UserAgent = o.UserAgent
	}
	return cfg
}

// NewClient wraps an existing clientset, typically k8s.io/client-go/kubernetes/fake.
func NewClient(cs kubernetes.Interface) *Client {
	return &Client{Clientset: cs}
}

// NewClientFromEnvironment prefers the pod service account and falls back to
// the default kubeconfig loading rules (KUBECONFIG, ~/.kube/config).
func NewClientFromEnvironment(_ context.Context, opts *Options) (*Client, error) {
	cfg, err := rest.InClusterConfig()
	if errors.Is(err, rest.ErrNotInCluster) {
		loader := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(), &clientcmd.ConfigOverrides{})
		cfg, err = loader.ClientConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("cluster config: %w", err)
	}
	return NewClientFromRESTConfig(cfg, opts)
}

// NewClientFromRESTConfig builds a clientset from a copy of cfg tuned by opts.
func NewClientFromRESTConfig(cfg *rest.Config, opts *Options) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("kube: nil REST config")
	}
	tuned := opts.apply(cfg)
	cs, err := kubernetes.NewForConfig(tuned)
	if err != nil {
		return nil, fmt.Errorf("kube: clientset: %w", err)
	}
	return &Client{RESTConfig: tuned, Clientset: cs}, nil
}

// clientset returns the typed clientset or an error for a zero Client.
func (c *Client) clientset() (kubernetes.Interface, error) {
	if c == nil || c.Clientset == nil {
		return nil, errors.New("kube: client is not initialized")
	}
	return c.Clientset, nil
}
