package appchart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

func TestAppChartLifecycle(t *testing.T) {
	ctx := context.Background()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(ctx); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	uc := &UseCase{Repos: &Repos{AppChart: repos.AppChart}}

	if _, err := uc.Create(ctx, &CreateInput{Name: "bad", Fields: []model.AppChartField{{Name: "x", Type: "color"}}}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := []model.AppChartField{{Name: "image", Type: model.FieldText, Required: true}}
	out, err := uc.Create(ctx, &CreateInput{Name: "Web", Fields: fields})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := out.AppChart.ID

	got, err := uc.Get(ctx, &GetInput{AppChartID: id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff(fields, got.AppChart.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	p, err := repos.Project.Create(ctx, &model.Project{Name: "shop"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	a, err := repos.App.Create(ctx, &model.App{ProjectID: p.ID, Name: "api", AppChartID: id, Values: map[string]any{"image": "nginx"}})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{AppChartID: id}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected conflict while in use, got %v", err)
	}

	name := "Web service"
	upd, err := uc.Update(ctx, &UpdateInput{AppChartID: id, Name: &name})
	if err != nil || upd.AppChart.Name != name || len(upd.AppChart.Fields) != 1 {
		t.Fatalf("update: %+v %v", upd, err)
	}

	if err := repos.App.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete app: %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{AppChartID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err := uc.List(ctx, &ListInput{})
	if err != nil || len(list.AppCharts) != 0 {
		t.Fatalf("list after delete: %v (%d)", err, len(list.AppCharts))
	}
}
