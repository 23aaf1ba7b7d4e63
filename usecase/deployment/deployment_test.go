package deployment

import (
	"context"
	"errors"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

type stubDeployments struct {
	projectID, appID string
}

func (s *stubDeployments) List(_ context.Context, projectID, appID string) ([]*model.Deployment, error) {
	s.projectID, s.appID = projectID, appID
	return []*model.Deployment{{ID: "abc123", ProjectID: projectID, AppID: appID, Replicas: 1}}, nil
}

func TestList(t *testing.T) {
	ctx := context.Background()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(ctx); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	repos := entity.NewRepositories(mem, nil, "")
	p, _ := repos.Project.Create(ctx, &model.Project{Name: "shop"})
	chart, _ := repos.AppChart.Create(ctx, &model.AppChart{Name: "plain"})
	a, err := repos.App.Create(ctx, &model.App{ProjectID: p.ID, Name: "web", AppChartID: chart.ID})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}

	if _, err := (&UseCase{Repos: &Repos{App: repos.App}}).List(ctx, &ListInput{AppID: a.ID}); !errors.Is(err, model.ErrUnsupported) {
		t.Fatalf("expected unsupported without a workload source, got %v", err)
	}

	stub := &stubDeployments{}
	uc := &UseCase{Repos: &Repos{App: repos.App, Deployment: stub}}
	if _, err := uc.List(ctx, &ListInput{AppID: "missing"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	out, err := uc.List(ctx, &ListInput{AppID: a.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if stub.projectID != p.ID || stub.appID != a.ID || len(out.Deployments) != 1 {
		t.Fatalf("unexpected call project=%q app=%q out=%+v", stub.projectID, stub.appID, out)
	}
}
