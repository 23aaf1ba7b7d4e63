package shipmightcfg

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Root)
		wantErr string
	}{
		{name: "defaults"},
		{name: "version", mutate: func(r *Root) { r.Version = "v2" }, wantErr: "version"},
		{name: "store url", mutate: func(r *Root) { r.Store.URL = "postgres://x" }, wantErr: "store.url"},
		{name: "system namespace", mutate: func(r *Root) { r.Store.SystemNamespace = "Ship_Might" }, wantErr: "store.systemNamespace"},
		{name: "nonce length", mutate: func(r *Root) { r.Naming.NonceLength = 2 }, wantErr: "naming"},
		{name: "slug length", mutate: func(r *Root) { r.Naming.SlugMaxLength = 64 }, wantErr: "naming"},
		{name: "id length", mutate: func(r *Root) { r.Naming.SlugMaxLength = 40 }, wantErr: "nonceLength must not exceed"},
		{name: "id length at limit", mutate: func(r *Root) { r.Naming.SlugMaxLength = 38 }},
		{name: "id length long nonce", mutate: func(r *Root) { r.Naming.SlugMaxLength = 30; r.Naming.NonceLength = 16 }, wantErr: "naming"},
		{name: "burst", mutate: func(r *Root) { r.Kube.Burst = -1 }, wantErr: "kube"},
		{name: "log level", mutate: func(r *Root) { r.Logging.Level = "TRACE" }, wantErr: "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Root{}
			cfg.ApplyDefaults()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseStoreURL(t *testing.T) {
	tests := []struct {
		in      string
		want    StoreURL
		wantErr bool
	}{
		{in: "memory:", want: StoreURL{Backend: BackendMemory}},
		{in: "memory:x", wantErr: true},
		{in: "sqlite:./a.db", want: StoreURL{Backend: BackendSQLite, Path: "./a.db"}},
		{in: "sqlite3::memory:", want: StoreURL{Backend: BackendSQLite, Path: ":memory:"}},
		{in: "kube:", want: StoreURL{Backend: BackendKube}},
		{in: "kube:/etc/kubeconfig", want: StoreURL{Backend: BackendKube, Path: "/etc/kubeconfig"}},
		{in: "kube", wantErr: true},
		{in: "mysql:x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseStoreURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := (StoreURL{Backend: BackendSQLite, Path: "a.db"}).DBURL(); got != "sqlite:a.db" {
		t.Errorf("DBURL = %q", got)
	}
}
