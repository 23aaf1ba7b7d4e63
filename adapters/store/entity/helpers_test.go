package entity

import (
	"context"
	"testing"

	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// recordingStore counts write and delete calls and can fail deletes by object name.
type recordingStore struct {
	objstore.ObjectStore
	writes     int
	deletes    int
	failDelete map[string]error
}

func (s *recordingStore) Create(ctx context.Context, namespace string, obj *objstore.Object) (*objstore.Object, error) {
	s.writes++
	return s.ObjectStore.Create(ctx, namespace, obj)
}

func (s *recordingStore) Replace(ctx context.Context, namespace, name string, obj *objstore.Object) (*objstore.Object, error) {
	s.writes++
	return s.ObjectStore.Replace(ctx, namespace, name, obj)
}

func (s *recordingStore) Delete(ctx context.Context, kind objstore.StorageKind, namespace, name string) error {
	s.deletes++
	if err := s.failDelete[name]; err != nil {
		return err
	}
	return s.ObjectStore.Delete(ctx, kind, namespace, name)
}

func newTestEnv(t *testing.T) (*domain.Repositories, *recordingStore) {
	t.Helper()
	mem := inmem.NewStore()
	ns := &objstore.Object{Kind: objstore.Namespace, Name: DefaultSystemNamespace}
	if _, err := mem.Create(context.Background(), "", ns); err != nil {
		t.Fatalf("create system namespace: %v", err)
	}
	rec := &recordingStore{ObjectStore: mem, failDelete: map[string]error{}}
	return NewRepositories(rec, naming.NewAllocator(0, 0), ""), rec
}

func mustProject(t *testing.T, repos *domain.Repositories, name string) *model.Project {
	t.Helper()
	p, err := repos.Project.Create(context.Background(), &model.Project{Name: name})
	if err != nil {
		t.Fatalf("create project %s: %v", name, err)
	}
	return p
}

func mustChart(t *testing.T, repos *domain.Repositories) *model.AppChart {
	t.Helper()
	c, err := repos.AppChart.Create(context.Background(), &model.AppChart{
		Name: "Web service",
		Fields: []model.AppChartField{
			{Name: "image", Type: model.FieldText, Required: true},
			{Name: "registry", Type: model.FieldRegistrySelect},
			{Name: "files", Type: model.FieldFileMount},
		},
	})
	if err != nil {
		t.Fatalf("create app chart: %v", err)
	}
	return c
}

func mustRegistry(t *testing.T, repos *domain.Repositories, name string) *model.Registry {
	t.Helper()
	r, err := repos.Registry.Create(context.Background(), &model.Registry{
		Name:       name,
		URL:        "registry.example.com",
		AuthMethod: model.RegistryAuthNone,
	})
	if err != nil {
		t.Fatalf("create registry %s: %v", name, err)
	}
	return r
}

func mustApp(t *testing.T, repos *domain.Repositories, projectID, chartID, name string, values map[string]any) *model.App {
	t.Helper()
	a, err := repos.App.Create(context.Background(), &model.App{
		ProjectID:  projectID,
		Name:       name,
		AppChartID: chartID,
		Values:     values,
	})
	if err != nil {
		t.Fatalf("create app %s: %v", name, err)
	}
	return a
}

func mounts(fileIDs ...string) []any {
	out := make([]any, 0, len(fileIDs))
	for i, id := range fileIDs {
		out = append(out, map[string]any{"fileId": id, "mountPath": "/mnt/" + string(rune('a'+i))})
	}
	return out
}
