package entity

import (
	"context"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// ProjectKind stores a project as a namespace named by its id.
var ProjectKind = Kind[model.Project]{
	Name:     "project",
	Storage:  objstore.Namespace,
	IDLabel:  LabelProjectID,
	GetID:    func(p *model.Project) string { return p.ID },
	SetID:    func(p *model.Project, id string) { p.ID = id },
	Seed:     func(p *model.Project) string { return p.Name },
	SortName: func(p *model.Project) string { return p.Name },
	Locate:   func(p *model.Project) (string, string) { return "", p.ID },
	Encode:   encodeProject,
	Decode:   decodeProject,
}

func encodeProject(p *model.Project, _ any) (*objstore.Object, error) {
	obj := newObject(objstore.Namespace, "", p.ID)
	obj.Labels[LabelProjectID] = p.ID
	putAnnotation(obj, AnnotationProjectName, p.Name)
	obj.CreatedAt = p.CreatedAt
	return obj, nil
}

func decodeProject(obj *objstore.Object) (*model.Project, error) {
	return &model.Project{
		ID:        obj.Labels[LabelProjectID],
		Name:      obj.Annotations[AnnotationProjectName],
		CreatedAt: obj.CreatedAt,
	}, nil
}

// ProjectRepository implements domain.ProjectRepository. Deleting a project
// deletes its namespace and with it every project-scoped object.
type ProjectRepository struct {
	store *Store[model.Project]
}

var _ domain.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(objs objstore.ObjectStore, ids *naming.Allocator) *ProjectRepository {
	r := &ProjectRepository{store: &Store[model.Project]{Objects: objs, IDs: ids, Kind: ProjectKind}}
	r.store.Prepare = func(_ context.Context, p *model.Project) (any, error) {
		if p.Name == "" {
			return nil, model.Invalidf("project name is required")
		}
		return nil, nil
	}
	return r
}

func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	return r.store.List(ctx)
}

func (r *ProjectRepository) FindIfExists(ctx context.Context, id string) (*model.Project, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *ProjectRepository) Find(ctx context.Context, id string) (*model.Project, error) {
	return r.store.Find(ctx, id)
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	return r.store.Create(ctx, p)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, mutate func(*model.Project) error) (*model.Project, error) {
	return r.store.Update(ctx, id, mutate)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
