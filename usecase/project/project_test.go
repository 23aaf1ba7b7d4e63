package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(context.Background()); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	return &UseCase{Repos: &Repos{Project: repos.Project}}
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	if _, err := uc.Create(ctx, &CreateInput{}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	created, err := uc.Create(ctx, &CreateInput{Name: "My Shop"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Project.ID
	if !strings.HasPrefix(id, "my-shop-") {
		t.Fatalf("unexpected id %q", id)
	}
	if _, err := uc.Create(ctx, &CreateInput{Name: "another"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := uc.List(ctx, &ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Projects) != 2 || list.Projects[0].Name != "another" {
		t.Fatalf("unexpected list: %+v", list.Projects)
	}

	name := "Shop"
	upd, err := uc.Update(ctx, &UpdateInput{ProjectID: id, Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Project.Name != "Shop" || upd.Project.ID != id {
		t.Fatalf("unexpected update result: %+v", upd.Project)
	}
	empty := ""
	if _, err := uc.Update(ctx, &UpdateInput{ProjectID: id, Name: &empty}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := uc.Get(ctx, &GetInput{ProjectID: id})
	if err != nil || got.Project.Name != "Shop" {
		t.Fatalf("get: %+v %v", got, err)
	}

	if _, err := uc.Delete(ctx, &DeleteInput{ProjectID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, &GetInput{ProjectID: id}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{}); err != nil {
		t.Fatalf("empty delete must be a no-op: %v", err)
	}
}
