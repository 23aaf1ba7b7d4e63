package kubeconfig

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const sample = `apiVersion: v1
kind: Config
current-context: dev
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-user
- name: prod
  context:
    cluster: prod-cluster
    user: prod-user
clusters:
- name: dev-cluster
  cluster:
    server: https://dev.example.com:6443
- name: prod-cluster
  cluster:
    server: https://prod.example.com:6443
users:
- name: dev-user
  user:
    token: dev-token
- name: prod-user
  user:
    token: prod-token
`

func TestLoadRename(t *testing.T) {
	cfg, err := Load([]byte(sample), Options{Rename: "shipmight", Namespace: "shipmight"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CurrentContext != "shipmight" {
		t.Fatalf("current context = %q", cfg.CurrentContext)
	}
	if len(cfg.Contexts) != 1 || len(cfg.Clusters) != 1 || len(cfg.AuthInfos) != 1 {
		t.Fatalf("expected a single context/cluster/user, got %d/%d/%d", len(cfg.Contexts), len(cfg.Clusters), len(cfg.AuthInfos))
	}
	ctx := cfg.Contexts["shipmight"]
	if ctx.Cluster != "shipmight" || ctx.AuthInfo != "shipmight" || ctx.Namespace != "shipmight" {
		t.Fatalf("unexpected context: %+v", ctx)
	}
	if got := cfg.Clusters["shipmight"].Server; got != "https://dev.example.com:6443" {
		t.Fatalf("server = %q", got)
	}

	rc, err := RESTConfig(cfg)
	if err != nil {
		t.Fatalf("RESTConfig: %v", err)
	}
	if rc.Host != "https://dev.example.com:6443" || rc.BearerToken != "dev-token" {
		t.Fatalf("unexpected REST config host=%q token=%q", rc.Host, rc.BearerToken)
	}
}

func TestLoadSelectContext(t *testing.T) {
	cfg, err := Load([]byte(sample), Options{Context: "prod"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CurrentContext != "prod" || len(cfg.Contexts) != 1 {
		t.Fatalf("unexpected contexts: current=%q n=%d", cfg.CurrentContext, len(cfg.Contexts))
	}
	if _, ok := cfg.Clusters["prod-cluster"]; !ok || len(cfg.Clusters) != 1 {
		t.Fatalf("unexpected clusters: %v", cfg.Clusters)
	}
	if cfg.Contexts["prod"].Namespace != "" {
		t.Fatalf("namespace should be untouched, got %q", cfg.Contexts["prod"].Namespace)
	}
}

func TestLoadMissingContext(t *testing.T) {
	data := strings.Replace(sample, "current-context: dev", "current-context: staging", 1)
	if _, err := Load([]byte(data), Options{}); err == nil {
		t.Fatalf("expected error for missing current context")
	}
	if _, err := Load([]byte(sample), Options{Context: "qa"}); err == nil {
		t.Fatalf("expected error for unknown context")
	}
}

func TestPrintJSON(t *testing.T) {
	cfg, err := Load([]byte(sample), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var buf bytes.Buffer
	if err := Print(&buf, cfg, "json"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	if out["current-context"] != "dev" {
		t.Fatalf("current-context = %v", out["current-context"])
	}
	if err := Print(&buf, cfg, "toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
