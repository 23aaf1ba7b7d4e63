package entity

import (
	"context"
	"net/url"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// RegistryKind stores a registry as a secret in the system namespace.
func RegistryKind(systemNamespace string) Kind[model.Registry] {
	return Kind[model.Registry]{
		Name:     "registry",
		Storage:  objstore.Secret,
		IDLabel:  LabelRegistryID,
		GetID:    func(r *model.Registry) string { return r.ID },
		SetID:    func(r *model.Registry, id string) { r.ID = id },
		Seed:     func(r *model.Registry) string { return r.Name },
		SortName: func(r *model.Registry) string { return r.Name },
		Locate: func(r *model.Registry) (string, string) {
			return systemNamespace, "registry-" + r.ID
		},
		Encode: func(r *model.Registry, _ any) (*objstore.Object, error) {
			obj := newObject(objstore.Secret, systemNamespace, "registry-"+r.ID)
			obj.Labels[LabelRegistryID] = r.ID
			putAnnotation(obj, AnnotationRegistryName, r.Name)
			putAnnotation(obj, AnnotationRegistryURL, r.URL)
			putAnnotation(obj, AnnotationRegistryAuthMethod, string(r.AuthMethod))
			putBytes(obj, dataAuthToken, []byte(r.AuthToken))
			obj.CreatedAt = r.CreatedAt
			return obj, nil
		},
		Decode: func(obj *objstore.Object) (*model.Registry, error) {
			token, err := getString(obj, dataAuthToken)
			if err != nil {
				return nil, err
			}
			return &model.Registry{
				ID:         obj.Labels[LabelRegistryID],
				Name:       obj.Annotations[AnnotationRegistryName],
				URL:        obj.Annotations[AnnotationRegistryURL],
				AuthMethod: model.RegistryAuthMethod(obj.Annotations[AnnotationRegistryAuthMethod]),
				AuthToken:  token,
				CreatedAt:  obj.CreatedAt,
			}, nil
		},
	}
}

// RegistryRepository implements domain.RegistryRepository. A registry
// selected by any app cannot be deleted.
type RegistryRepository struct {
	store *Store[model.Registry]
	apps  *Store[model.App]
}

var _ domain.RegistryRepository = (*RegistryRepository)(nil)

func NewRegistryRepository(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string) *RegistryRepository {
	r := &RegistryRepository{
		store: &Store[model.Registry]{Objects: objs, IDs: ids, Kind: RegistryKind(systemNamespace)},
		apps:  &Store[model.App]{Objects: objs, IDs: ids, Kind: AppKind},
	}
	r.store.Prepare = func(_ context.Context, reg *model.Registry) (any, error) {
		if reg.Name == "" {
			return nil, model.Invalidf("registry name is required")
		}
		if reg.URL == "" {
			return nil, model.Invalidf("registry url is required")
		}
		if _, err := url.Parse(reg.URL); err != nil {
			return nil, model.Invalidf("registry url %q is not valid: %v", reg.URL, err)
		}
		switch reg.AuthMethod {
		case model.RegistryAuthNone:
		case model.RegistryAuthToken:
			if reg.AuthToken == "" {
				return nil, model.Invalidf("registry auth token is required for auth method %s", reg.AuthMethod)
			}
		default:
			return nil, model.Invalidf("unknown registry auth method %q", reg.AuthMethod)
		}
		return nil, nil
	}
	r.store.CanDelete = r.canDelete
	return r
}

func (r *RegistryRepository) canDelete(ctx context.Context, reg *model.Registry) error {
	objs, err := r.apps.ListObjects(ctx, objstore.Has(AppRegistry.Key(reg.ID)))
	if err != nil {
		return err
	}
	if HasAnyLink(objs, AppRegistry, reg.ID) {
		return model.Conflictf("registry %s is used by %d app(s)", reg.ID, len(objs))
	}
	return nil
}

// Usage groups every app by the registries it selects.
func (r *RegistryRepository) Usage(ctx context.Context) (map[string][]*model.App, error) {
	objs, err := r.apps.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByTarget(objs, AppRegistry, decodeApp, AppKind.SortName)
}

func (r *RegistryRepository) List(ctx context.Context) ([]*model.Registry, error) {
	return r.store.List(ctx)
}

func (r *RegistryRepository) FindIfExists(ctx context.Context, id string) (*model.Registry, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *RegistryRepository) Find(ctx context.Context, id string) (*model.Registry, error) {
	return r.store.Find(ctx, id)
}

func (r *RegistryRepository) Create(ctx context.Context, reg *model.Registry) (*model.Registry, error) {
	return r.store.Create(ctx, reg)
}

func (r *RegistryRepository) Update(ctx context.Context, id string, mutate func(*model.Registry) error) (*model.Registry, error) {
	return r.store.Update(ctx, id, mutate)
}

func (r *RegistryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
