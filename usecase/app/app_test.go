package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

func newUseCase(t *testing.T) (*UseCase, *domain.Repositories) {
	t.Helper()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(context.Background()); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	return &UseCase{Repos: &Repos{Project: repos.Project, App: repos.App, AppChart: repos.AppChart}}, repos
}

func TestAppLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, repos := newUseCase(t)

	p, err := repos.Project.Create(ctx, &model.Project{Name: "shop"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	chart, err := repos.AppChart.Create(ctx, &model.AppChart{
		Name:   "web",
		Fields: []model.AppChartField{{Name: "image", Type: model.FieldText, Required: true}},
	})
	if err != nil {
		t.Fatalf("create chart: %v", err)
	}

	if _, err := uc.Create(ctx, &CreateInput{ProjectID: "nope", Name: "api", AppChartID: chart.ID}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found for unknown project, got %v", err)
	}
	if _, err := uc.Create(ctx, &CreateInput{ProjectID: p.ID, Name: "api", AppChartID: chart.ID}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error for missing image, got %v", err)
	}

	out, err := uc.Create(ctx, &CreateInput{
		ProjectID:  p.ID,
		Name:       "api",
		AppChartID: chart.ID,
		Values:     map[string]any{"image": "nginx:1.25"},
	})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	id := out.App.ID

	list, err := uc.List(ctx, &ListInput{ProjectID: p.ID})
	if err != nil || len(list.Apps) != 1 {
		t.Fatalf("list: %v (%d)", err, len(list.Apps))
	}

	name := "backend"
	upd, err := uc.Update(ctx, &UpdateInput{AppID: id, Name: &name, Values: map[string]any{"image": "nginx:1.27"}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.App.Name != "backend" || upd.App.Values["image"] != "nginx:1.27" || upd.App.ProjectID != p.ID {
		t.Fatalf("unexpected update result: %+v", upd.App)
	}
	if _, err := uc.Update(ctx, &UpdateInput{AppID: id, Values: map[string]any{"color": "red"}}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error for undeclared value, got %v", err)
	}

	got, err := uc.Get(ctx, &GetInput{AppID: id})
	if err != nil || got.App.Name != "backend" {
		t.Fatalf("get: %+v %v", got, err)
	}

	if _, err := uc.Delete(ctx, &DeleteInput{AppID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, &GetInput{AppID: id}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
