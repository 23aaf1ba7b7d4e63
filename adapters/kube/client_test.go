package kube

import (
	"testing"

	"k8s.io/client-go/rest"
)

func TestNewClientFromRESTConfig(t *testing.T) {
	base := &rest.Config{Host: "https://cluster.example.invalid", BearerToken: "t0ken"}

	c, err := NewClientFromRESTConfig(base, &Options{UserAgent: "shipmight-test", Burst: 7})
	if err != nil {
		t.Fatalf("NewClientFromRESTConfig: %v", err)
	}
	if c.RESTConfig.QPS != defaultQPS || c.RESTConfig.Burst != 7 {
		t.Errorf("rate limits = %v/%d", c.RESTConfig.QPS, c.RESTConfig.Burst)
	}
	if c.RESTConfig.UserAgent != "shipmight-test" {
		t.Errorf("user agent = %q", c.RESTConfig.UserAgent)
	}
	if base.QPS != 0 || base.UserAgent != "" {
		t.Errorf("input config was modified: %+v", base)
	}
	if _, err := c.clientset(); err != nil {
		t.Errorf("clientset: %v", err)
	}

	if _, err := NewClientFromRESTConfig(nil, nil); err == nil {
		t.Errorf("expected error for nil config")
	}
	var zero *Client
	if _, err := zero.clientset(); err == nil {
		t.Errorf("expected error for nil client")
	}
}
