package rdb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

func newTestStore(t *testing.T) *ObjectStore {
	t.Helper()
	db, err := OpenFromURL("sqlite:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	s := NewObjectStore(db)
	s.Now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestOpenFromURLScheme(t *testing.T) {
	if _, err := OpenFromURL("postgres://localhost/db"); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
}

func TestObjectStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sec := &objstore.Object{
		Kind:        objstore.Secret,
		Name:        "app-1",
		Labels:      map[string]string{"a": "1", "b": "x"},
		Annotations: map[string]string{"name": "web"},
		Data:        map[string]string{"values": "e30="},
	}
	if _, err := s.Create(ctx, "p1", sec); !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("create without namespace: got %v", err)
	}
	if _, err := s.Create(ctx, "", &objstore.Object{Kind: objstore.Namespace, Name: "p1"}); err != nil {
		t.Fatalf("create namespace: %v", err)
	}
	got, err := s.Create(ctx, "p1", sec)
	if err != nil {
		t.Fatalf("create secret: %v", err)
	}
	if got.Namespace != "p1" || !got.CreatedAt.Equal(s.Now()) {
		t.Fatalf("unexpected created object: %+v", got)
	}
	if _, err := s.Create(ctx, "p1", sec); !errors.Is(err, objstore.ErrAlreadyExists) {
		t.Fatalf("duplicate create: got %v", err)
	}

	list, err := s.List(ctx, objstore.Secret, objstore.Selector{objstore.Eq("a", "1"), objstore.Has("b")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 object, got %d", len(list))
	}
	if diff := cmp.Diff(sec.Data, list[0].Data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
	if list, _ := s.List(ctx, objstore.Secret, objstore.Selector{objstore.Eq("a", "2")}); len(list) != 0 {
		t.Fatalf("selector should not match, got %d", len(list))
	}

	upd := sec.DeepCopy()
	upd.Annotations["name"] = "api"
	s.Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	got, err = s.Replace(ctx, "p1", "app-1", upd)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got.Annotations["name"] != "api" || got.CreatedAt.Month() != time.May {
		t.Fatalf("unexpected replaced object: %+v", got)
	}
	if _, err := s.Replace(ctx, "p1", "missing", upd); !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("replace missing: got %v", err)
	}

	if err := s.Delete(ctx, objstore.Namespace, "", "p1"); err != nil {
		t.Fatalf("delete namespace: %v", err)
	}
	if list, _ := s.List(ctx, objstore.Secret, nil); len(list) != 0 {
		t.Fatalf("namespace delete should cascade, %d left", len(list))
	}
	if err := s.Delete(ctx, objstore.Secret, "p1", "app-1"); !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("delete missing: got %v", err)
	}
}

func TestObjectStoreIngressRoute(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.Create(ctx, "", &objstore.Object{Kind: objstore.Namespace, Name: "p1"}); err != nil {
		t.Fatalf("create namespace: %v", err)
	}
	route := &objstore.Route{Host: "example.com", Path: "/", ServiceName: "app-1", ServicePort: 8080}
	if _, err := s.Create(ctx, "p1", &objstore.Object{Kind: objstore.Ingress, Name: "domain-1", Route: route}); err != nil {
		t.Fatalf("create ingress: %v", err)
	}
	list, err := s.List(ctx, objstore.Ingress, nil)
	if err != nil || len(list) != 1 {
		t.Fatalf("list ingress: %v (%d)", err, len(list))
	}
	if diff := cmp.Diff(route, list[0].Route); diff != "" {
		t.Fatalf("route mismatch (-want +got):\n%s", diff)
	}
}
