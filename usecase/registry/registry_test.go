package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(ctx); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	uc := &UseCase{Repos: &Repos{Registry: repos.Registry}}

	if _, err := uc.Create(ctx, &CreateInput{Name: "ghcr", URL: "https://ghcr.io", AuthMethod: model.RegistryAuthToken}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected token to be required, got %v", err)
	}
	out, err := uc.Create(ctx, &CreateInput{Name: "ghcr", URL: "https://ghcr.io", AuthMethod: model.RegistryAuthToken, AuthToken: "s3cret"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	regID := out.Registry.ID
	hub, err := uc.Create(ctx, &CreateInput{Name: "hub", URL: "https://index.docker.io"})
	if err != nil {
		t.Fatalf("create hub: %v", err)
	}
	if hub.Registry.AuthMethod != model.RegistryAuthNone {
		t.Fatalf("auth method should default to none, got %q", hub.Registry.AuthMethod)
	}

	p, _ := repos.Project.Create(ctx, &model.Project{Name: "shop"})
	chart, err := repos.AppChart.Create(ctx, &model.AppChart{
		Name:   "web",
		Fields: []model.AppChartField{{Name: "registry", Type: model.FieldRegistrySelect}},
	})
	if err != nil {
		t.Fatalf("create chart: %v", err)
	}
	a, err := repos.App.Create(ctx, &model.App{ProjectID: p.ID, Name: "web", AppChartID: chart.ID, Values: map[string]any{"registry": regID}})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}

	usage, err := uc.Usage(ctx, &UsageInput{})
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage.Usage) != 1 || len(usage.Usage[regID]) != 1 || usage.Usage[regID][0].ID != a.ID {
		t.Fatalf("unexpected usage: %+v", usage.Usage)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{RegistryID: regID}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected conflict while selected, got %v", err)
	}

	none := model.RegistryAuthNone
	upd, err := uc.Update(ctx, &UpdateInput{RegistryID: regID, AuthMethod: &none})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Registry.AuthToken != "" {
		t.Fatalf("token should be dropped with auth method none")
	}

	if _, err := repos.App.Update(ctx, a.ID, func(a *model.App) error {
		a.Values = map[string]any{"registry": ""}
		return nil
	}); err != nil {
		t.Fatalf("unlink app: %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{RegistryID: regID}); err != nil {
		t.Fatalf("delete after unlink: %v", err)
	}
	list, err := uc.List(ctx, &ListInput{})
	if err != nil || len(list.Registries) != 1 || list.Registries[0].Name != "hub" {
		t.Fatalf("list: %+v %v", list, err)
	}
}
