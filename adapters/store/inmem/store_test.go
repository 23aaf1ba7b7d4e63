package inmem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
	if _, err := s.Create(context.Background(), "", &objstore.Object{Kind: objstore.Namespace, Name: "p1"}); err != nil {
		t.Fatalf("create namespace: %v", err)
	}
	return s
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	obj := &objstore.Object{Kind: objstore.Secret, Name: "app-a", Labels: map[string]string{"shipmight.com/app-id": "a"}}
	created, err := s.Create(ctx, "p1", obj)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedAt.IsZero() || created.Namespace != "p1" {
		t.Fatalf("unexpected created object: %+v", created)
	}
	obj.Labels["shipmight.com/app-id"] = "mutated"
	got, err := s.List(ctx, objstore.Secret, objstore.Selector{objstore.Eq("shipmight.com/app-id", "a")})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 object, got %d (caller mutation leaked into store?)", len(got))
	}
	if _, err := s.Create(ctx, "p1", &objstore.Object{Kind: objstore.Secret, Name: "app-a"}); !errors.Is(err, objstore.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateRequiresNamespace(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(context.Background(), "missing", &objstore.Object{Kind: objstore.ConfigMap, Name: "x"})
	if !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing namespace, got %v", err)
	}
}

func TestReplaceKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	created, _ := s.Create(ctx, "p1", &objstore.Object{Kind: objstore.Secret, Name: "f", Annotations: map[string]string{"a": "1"}})
	replaced, err := s.Replace(ctx, "p1", "f", &objstore.Object{Kind: objstore.Secret, Name: "f", Annotations: map[string]string{"a": "2"}})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !replaced.CreatedAt.Equal(created.CreatedAt) || replaced.Annotations["a"] != "2" {
		t.Fatalf("unexpected replaced object: %+v", replaced)
	}
	if _, err := s.Replace(ctx, "p1", "nope", &objstore.Object{Kind: objstore.Secret}); !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNamespaceCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, n := range []string{"a", "b"} {
		if _, err := s.Create(ctx, "p1", &objstore.Object{Kind: objstore.Secret, Name: n}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := s.Delete(ctx, objstore.Namespace, "", "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ := s.List(ctx, objstore.Secret, nil)
	if len(got) != 0 {
		t.Fatalf("expected namespaced objects to be gone, got %d", len(got))
	}
	if err := s.Delete(ctx, objstore.Namespace, "", "p1"); !errors.Is(err, objstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
