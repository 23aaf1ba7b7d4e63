package deployhook

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

func TestDeployHook(t *testing.T) {
	ctx := context.Background()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(ctx); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	n := 0
	uc := &UseCase{
		Repos: &Repos{App: repos.App, DeployHook: repos.DeployHook},
		NewToken: func() string {
			n++
			return fmt.Sprintf("token-%d", n)
		},
	}

	p, _ := repos.Project.Create(ctx, &model.Project{Name: "shop"})
	chart, _ := repos.AppChart.Create(ctx, &model.AppChart{Name: "plain"})
	a, err := repos.App.Create(ctx, &model.App{ProjectID: p.ID, Name: "web", AppChartID: chart.ID})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}

	if _, err := uc.Create(ctx, &CreateInput{AppID: "missing", Name: "ci"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found for unknown app, got %v", err)
	}
	out, err := uc.Create(ctx, &CreateInput{AppID: a.ID, Name: "ci"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	h := out.DeployHook
	if h.ProjectID != p.ID || h.Token != "token-1" {
		t.Fatalf("unexpected hook: %+v", h)
	}

	if _, err := uc.Verify(ctx, &VerifyInput{DeployHookID: h.ID, Token: "wrong"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("wrong token must not verify, got %v", err)
	}
	v, err := uc.Verify(ctx, &VerifyInput{DeployHookID: h.ID, Token: "token-1"})
	if err != nil || v.DeployHook.AppID != a.ID {
		t.Fatalf("verify: %+v %v", v, err)
	}

	upd, err := uc.Update(ctx, &UpdateInput{DeployHookID: h.ID, RotateToken: true})
	if err != nil || upd.DeployHook.Token != "token-2" {
		t.Fatalf("rotate: %+v %v", upd, err)
	}

	list, err := uc.List(ctx, &ListInput{AppID: a.ID})
	if err != nil || len(list.DeployHooks) != 1 {
		t.Fatalf("list: %v (%d)", err, len(list.DeployHooks))
	}

	if err := repos.App.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete app: %v", err)
	}
	if _, err := uc.Get(ctx, &GetInput{DeployHookID: h.ID}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("hook should be removed with its app, got %v", err)
	}
}

func TestDefaultToken(t *testing.T) {
	uc := &UseCase{}
	if got := uc.newToken(); len(got) != tokenLength {
		t.Fatalf("token length = %d", len(got))
	}
}
