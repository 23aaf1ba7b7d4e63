// Package inmem is a thread-safe in-memory objstore.ObjectStore. It mirrors the
// cluster semantics the entity store relies on: namespaced objects need their
// namespace, creation time is assigned on Create and deleting a namespace
// removes everything inside it.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

type key struct {
	kind      objstore.StorageKind
	namespace string
	name      string
}

// Store is a thread-safe in-memory object store.
type Store struct {
	mu    sync.RWMutex
	items map[key]*objstore.Object
	// Now stamps CreatedAt; defaults to time.Now in UTC truncated to seconds like the API server.
	Now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[key]*objstore.Object)}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC().Truncate(time.Second)
}

func keyOf(kind objstore.StorageKind, namespace, name string) key {
	if !kind.Namespaced() {
		namespace = ""
	}
	return key{kind: kind, namespace: namespace, name: name}
}

// List returns matching objects ordered by namespace and name.
func (s *Store) List(_ context.Context, kind objstore.StorageKind, sel objstore.Selector) ([]*objstore.Object, error) {
	ls, err := sel.Compile()
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*objstore.Object
	for k, v := range s.items {
		if k.kind != kind || !ls.Matches(labels.Set(v.Labels)) {
			continue
		}
		out = append(out, v.DeepCopy())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Namespace != out[j].Namespace {
			return out[i].Namespace < out[j].Namespace
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) Create(_ context.Context, namespace string, obj *objstore.Object) (*objstore.Object, error) {
	if obj == nil || obj.Name == "" {
		return nil, fmt.Errorf("object name is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := keyOf(obj.Kind, namespace, obj.Name)
	if obj.Kind.Namespaced() {
		if namespace == "" {
			return nil, fmt.Errorf("namespace is empty for %s %s", obj.Kind, obj.Name)
		}
		if _, ok := s.items[keyOf(objstore.Namespace, "", namespace)]; !ok {
			return nil, fmt.Errorf("namespace %s: %w", namespace, objstore.ErrNotFound)
		}
	}
	if _, ok := s.items[k]; ok {
		return nil, fmt.Errorf("%s %s/%s: %w", obj.Kind, namespace, obj.Name, objstore.ErrAlreadyExists)
	}
	cp := obj.DeepCopy()
	cp.Namespace = k.namespace
	cp.CreatedAt = s.now()
	s.items[k] = cp
	return cp.DeepCopy(), nil
}

func (s *Store) Replace(_ context.Context, namespace, name string, obj *objstore.Object) (*objstore.Object, error) {
	if obj == nil {
		return nil, fmt.Errorf("object is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := keyOf(obj.Kind, namespace, name)
	cur, ok := s.items[k]
	if !ok {
		return nil, fmt.Errorf("%s %s/%s: %w", obj.Kind, namespace, name, objstore.ErrNotFound)
	}
	cp := obj.DeepCopy()
	cp.Namespace = k.namespace
	cp.Name = name
	cp.CreatedAt = cur.CreatedAt
	s.items[k] = cp
	return cp.DeepCopy(), nil
}

func (s *Store) Delete(_ context.Context, kind objstore.StorageKind, namespace, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := keyOf(kind, namespace, name)
	if _, ok := s.items[k]; !ok {
		return fmt.Errorf("%s %s/%s: %w", kind, namespace, name, objstore.ErrNotFound)
	}
	delete(s.items, k)
	if kind == objstore.Namespace {
		for ik := range s.items {
			if ik.namespace == name {
				delete(s.items, ik)
			}
		}
	}
	return nil
}

var _ objstore.ObjectStore = (*Store)(nil)
