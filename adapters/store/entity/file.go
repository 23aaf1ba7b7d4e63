package entity

import (
	"context"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// FileKind stores a file as a secret in its project namespace.
var FileKind = Kind[model.File]{
	Name:     "file",
	Storage:  objstore.Secret,
	IDLabel:  LabelFileID,
	GetID:    func(f *model.File) string { return f.ID },
	SetID:    func(f *model.File, id string) { f.ID = id },
	Seed:     func(f *model.File) string { return f.Name },
	SortName: func(f *model.File) string { return f.Name },
	Locate:   func(f *model.File) (string, string) { return f.ProjectID, "file-" + f.ID },
	Encode: func(f *model.File, _ any) (*objstore.Object, error) {
		obj := newObject(objstore.Secret, f.ProjectID, "file-"+f.ID)
		obj.Labels[LabelFileID] = f.ID
		putLabel(obj, LabelProjectID, f.ProjectID)
		putAnnotation(obj, AnnotationFileName, f.Name)
		putBytes(obj, dataContent, f.Content)
		obj.CreatedAt = f.CreatedAt
		return obj, nil
	},
	Decode: func(obj *objstore.Object) (*model.File, error) {
		content, err := getBytes(obj, dataContent)
		if err != nil {
			return nil, err
		}
		return &model.File{
			ID:        obj.Labels[LabelFileID],
			ProjectID: obj.Labels[LabelProjectID],
			Name:      obj.Annotations[AnnotationFileName],
			Content:   content,
			CreatedAt: obj.CreatedAt,
		}, nil
	},
}

// FileRepository implements domain.FileRepository. A file mounted by any app
// cannot be deleted.
type FileRepository struct {
	store *Store[model.File]
	apps  *Store[model.App]
}

var _ domain.FileRepository = (*FileRepository)(nil)

func NewFileRepository(objs objstore.ObjectStore, ids *naming.Allocator) *FileRepository {
	r := &FileRepository{
		store: &Store[model.File]{Objects: objs, IDs: ids, Kind: FileKind},
		apps:  &Store[model.App]{Objects: objs, IDs: ids, Kind: AppKind},
	}
	r.store.Prepare = func(_ context.Context, f *model.File) (any, error) {
		if f.Name == "" {
			return nil, model.Invalidf("file name is required")
		}
		if f.ProjectID == "" {
			return nil, model.Invalidf("file project is required")
		}
		return nil, nil
	}
	r.store.CanDelete = r.canDelete
	return r
}

func (r *FileRepository) canDelete(ctx context.Context, f *model.File) error {
	objs, err := r.apps.ListObjects(ctx, objstore.Has(AppFile.Key(f.ID)))
	if err != nil {
		return err
	}
	if HasAnyLink(objs, AppFile, f.ID) {
		return model.Conflictf("file %s is mounted by %d app(s)", f.ID, len(objs))
	}
	return nil
}

// Usage groups the apps of projectID by the files they mount. An empty
// projectID covers every project.
func (r *FileRepository) Usage(ctx context.Context, projectID string) (map[string][]*model.App, error) {
	var reqs []objstore.Requirement
	if projectID != "" {
		reqs = append(reqs, objstore.Eq(LabelProjectID, projectID))
	}
	objs, err := r.apps.ListObjects(ctx, reqs...)
	if err != nil {
		return nil, err
	}
	return GroupByTarget(objs, AppFile, decodeApp, AppKind.SortName)
}

func (r *FileRepository) List(ctx context.Context, f domain.ListFilter) ([]*model.File, error) {
	var reqs []objstore.Requirement
	if f.ProjectID != "" {
		reqs = append(reqs, objstore.Eq(LabelProjectID, f.ProjectID))
	}
	return r.store.List(ctx, reqs...)
}

func (r *FileRepository) FindIfExists(ctx context.Context, id string) (*model.File, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *FileRepository) Find(ctx context.Context, id string) (*model.File, error) {
	return r.store.Find(ctx, id)
}

func (r *FileRepository) Create(ctx context.Context, f *model.File) (*model.File, error) {
	return r.store.Create(ctx, f)
}

func (r *FileRepository) Update(ctx context.Context, id string, mutate func(*model.File) error) (*model.File, error) {
	return r.store.Update(ctx, id, func(f *model.File) error {
		projectID := f.ProjectID
		if err := mutate(f); err != nil {
			return err
		}
		f.ProjectID = projectID
		return nil
	})
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
