package entity

import (
	"context"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/inmem"
)

func TestSystemNamespaceEnsure(t *testing.T) {
	ctx := context.Background()
	mem := inmem.NewStore()
	sys := &SystemNamespace{Objects: mem}

	created, err := sys.Ensure(ctx)
	if err != nil || !created {
		t.Fatalf("first Ensure: created=%v err=%v", created, err)
	}
	created, err = sys.Ensure(ctx)
	if err != nil || created {
		t.Fatalf("second Ensure: created=%v err=%v", created, err)
	}

	repos := NewRepositories(mem, nil, "")
	projects, err := repos.Project.List(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("system namespace must not be listed as a project, got %d", len(projects))
	}
}
