// Package objstore defines the label-queryable object store the entity store is
// built on. Implementations live in adapters/kube (cluster), adapters/store/inmem
// and adapters/store/rdb.
package objstore

import (
	"context"
	"errors"
	"maps"
	"time"
)

// StorageKind names the orchestrator object type an entity is written to.
type StorageKind string

const (
	Namespace StorageKind = "Namespace"
	Secret    StorageKind = "Secret"
	ConfigMap StorageKind = "ConfigMap"
	Ingress   StorageKind = "Ingress"
)

// Namespaced reports whether objects of this kind live inside a namespace.
func (k StorageKind) Namespaced() bool { return k != Namespace }

var (
	// ErrAlreadyExists is returned by Create when kind/namespace/name is taken.
	ErrAlreadyExists = errors.New("object already exists")
	// ErrNotFound is returned by Replace and Delete for a missing object.
	ErrNotFound = errors.New("object not found")
)

// Route is the HTTP routing part of an Ingress object.
type Route struct {
	Host          string `json:"host"`
	Path          string `json:"path"`
	ServiceName   string `json:"serviceName,omitempty"`
	ServicePort   int32  `json:"servicePort,omitempty"`
	TLSSecretName string `json:"tlsSecretName,omitempty"`
}

// Object is the store-neutral shape of a persisted entity.
type Object struct {
	Kind        StorageKind
	Namespace   string
	Name        string
	Labels      map[string]string
	Annotations map[string]string
	// Data values are base64 strings.
	Data map[string]string
	// Route is only meaningful for Ingress objects.
	Route *Route
	// CreatedAt is assigned by the store on Create.
	CreatedAt time.Time
}

// DeepCopy returns an independent copy of o.
func (o *Object) DeepCopy() *Object {
	if o == nil {
		return nil
	}
	out := *o
	out.Labels = maps.Clone(o.Labels)
	out.Annotations = maps.Clone(o.Annotations)
	out.Data = maps.Clone(o.Data)
	if o.Route != nil {
		r := *o.Route
		out.Route = &r
	}
	return &out
}

// ObjectStore is the four-operation capability the entity store consumes.
// Implementations own their timeout and retry policy.
type ObjectStore interface {
	// List returns every object of kind, in any namespace, matching sel.
	List(ctx context.Context, kind StorageKind, sel Selector) ([]*Object, error)
	// Create writes obj into namespace (ignored for cluster-scoped kinds).
	Create(ctx context.Context, namespace string, obj *Object) (*Object, error)
	// Replace overwrites namespace/name unconditionally.
	Replace(ctx context.Context, namespace, name string, obj *Object) (*Object, error)
	Delete(ctx context.Context, kind StorageKind, namespace, name string) error
}
