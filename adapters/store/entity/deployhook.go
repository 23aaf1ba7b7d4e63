package entity

import (
	"context"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// DeployHookKind stores a deploy hook as a secret in its project namespace.
var DeployHookKind = Kind[model.DeployHook]{
	Name:     "deploy hook",
	Storage:  objstore.Secret,
	IDLabel:  LabelDeployHookID,
	GetID:    func(h *model.DeployHook) string { return h.ID },
	SetID:    func(h *model.DeployHook, id string) { h.ID = id },
	Seed:     func(h *model.DeployHook) string { return h.Name },
	SortName: func(h *model.DeployHook) string { return h.Name },
	Locate:   func(h *model.DeployHook) (string, string) { return h.ProjectID, "deploy-hook-" + h.ID },
	Encode: func(h *model.DeployHook, _ any) (*objstore.Object, error) {
		obj := newObject(objstore.Secret, h.ProjectID, "deploy-hook-"+h.ID)
		obj.Labels[LabelDeployHookID] = h.ID
		putLabel(obj, LabelProjectID, h.ProjectID)
		putLabel(obj, LabelAppID, h.AppID)
		putAnnotation(obj, AnnotationDeployHookName, h.Name)
		putBytes(obj, dataToken, []byte(h.Token))
		obj.CreatedAt = h.CreatedAt
		return obj, nil
	},
	Decode: func(obj *objstore.Object) (*model.DeployHook, error) {
		token, err := getString(obj, dataToken)
		if err != nil {
			return nil, err
		}
		return &model.DeployHook{
			ID:        obj.Labels[LabelDeployHookID],
			ProjectID: obj.Labels[LabelProjectID],
			AppID:     obj.Labels[LabelAppID],
			Name:      obj.Annotations[AnnotationDeployHookName],
			Token:     token,
			CreatedAt: obj.CreatedAt,
		}, nil
	},
}

// DeployHookRepository implements domain.DeployHookRepository.
type DeployHookRepository struct {
	store *Store[model.DeployHook]
}

var _ domain.DeployHookRepository = (*DeployHookRepository)(nil)

func NewDeployHookRepository(objs objstore.ObjectStore, ids *naming.Allocator) *DeployHookRepository {
	r := &DeployHookRepository{store: &Store[model.DeployHook]{Objects: objs, IDs: ids, Kind: DeployHookKind}}
	r.store.Prepare = func(_ context.Context, h *model.DeployHook) (any, error) {
		switch {
		case h.Name == "":
			return nil, model.Invalidf("deploy hook name is required")
		case h.ProjectID == "":
			return nil, model.Invalidf("deploy hook project is required")
		case h.AppID == "":
			return nil, model.Invalidf("deploy hook app is required")
		case h.Token == "":
			return nil, model.Invalidf("deploy hook token is required")
		}
		return nil, nil
	}
	return r
}

func (r *DeployHookRepository) List(ctx context.Context, f domain.ListFilter) ([]*model.DeployHook, error) {
	var reqs []objstore.Requirement
	if f.ProjectID != "" {
		reqs = append(reqs, objstore.Eq(LabelProjectID, f.ProjectID))
	}
	if f.AppID != "" {
		reqs = append(reqs, objstore.Eq(LabelAppID, f.AppID))
	}
	return r.store.List(ctx, reqs...)
}

func (r *DeployHookRepository) FindIfExists(ctx context.Context, id string) (*model.DeployHook, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *DeployHookRepository) Find(ctx context.Context, id string) (*model.DeployHook, error) {
	return r.store.Find(ctx, id)
}

func (r *DeployHookRepository) Create(ctx context.Context, h *model.DeployHook) (*model.DeployHook, error) {
	return r.store.Create(ctx, h)
}

func (r *DeployHookRepository) Update(ctx context.Context, id string, mutate func(*model.DeployHook) error) (*model.DeployHook, error) {
	return r.store.Update(ctx, id, func(h *model.DeployHook) error {
		projectID := h.ProjectID
		if err := mutate(h); err != nil {
			return err
		}
		h.ProjectID = projectID
		return nil
	})
}

func (r *DeployHookRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
