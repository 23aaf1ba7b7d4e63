package entity

import (
	"context"
	"strings"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// AppChartKind stores an app chart as a config map in the system namespace.
func AppChartKind(systemNamespace string) Kind[model.AppChart] {
	return Kind[model.AppChart]{
		Name:     "app chart",
		Storage:  objstore.ConfigMap,
		IDLabel:  LabelAppChartID,
		GetID:    func(c *model.AppChart) string { return c.ID },
		SetID:    func(c *model.AppChart, id string) { c.ID = id },
		Seed:     func(c *model.AppChart) string { return c.Name },
		SortName: func(c *model.AppChart) string { return c.Name },
		Locate: func(c *model.AppChart) (string, string) {
			return systemNamespace, "app-chart-" + c.ID
		},
		Encode: func(c *model.AppChart, _ any) (*objstore.Object, error) {
			obj := newObject(objstore.ConfigMap, systemNamespace, "app-chart-"+c.ID)
			obj.Labels[LabelAppChartID] = c.ID
			putAnnotation(obj, AnnotationAppChartName, c.Name)
			if err := putJSON(obj, dataFields, c.Fields); err != nil {
				return nil, err
			}
			obj.CreatedAt = c.CreatedAt
			return obj, nil
		},
		Decode: decodeAppChart,
	}
}

func decodeAppChart(obj *objstore.Object) (*model.AppChart, error) {
	c := &model.AppChart{
		ID:        obj.Labels[LabelAppChartID],
		Name:      obj.Annotations[AnnotationAppChartName],
		CreatedAt: obj.CreatedAt,
	}
	if err := getJSON(obj, dataFields, &c.Fields); err != nil {
		return nil, err
	}
	return c, nil
}

// AppChartRepository implements domain.AppChartRepository. A chart used by
// any app cannot be deleted.
type AppChartRepository struct {
	store *Store[model.AppChart]
	apps  *Store[model.App]
}

var _ domain.AppChartRepository = (*AppChartRepository)(nil)

func NewAppChartRepository(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string) *AppChartRepository {
	r := &AppChartRepository{
		store: &Store[model.AppChart]{Objects: objs, IDs: ids, Kind: AppChartKind(systemNamespace)},
		apps:  &Store[model.App]{Objects: objs, IDs: ids, Kind: AppKind},
	}
	r.store.Prepare = func(_ context.Context, c *model.AppChart) (any, error) {
		if c.Name == "" {
			return nil, model.Invalidf("app chart name is required")
		}
		return nil, c.ValidateFields()
	}
	r.store.CanDelete = r.canDelete
	return r
}

func (r *AppChartRepository) canDelete(ctx context.Context, c *model.AppChart) error {
	apps, err := r.apps.List(ctx, objstore.Eq(LabelAppChartID, c.ID))
	if err != nil {
		return err
	}
	if len(apps) > 0 {
		return model.Conflictf("app chart %s is used by apps %s", c.ID, appNames(apps))
	}
	return nil
}

func (r *AppChartRepository) List(ctx context.Context) ([]*model.AppChart, error) {
	return r.store.List(ctx)
}

func (r *AppChartRepository) FindIfExists(ctx context.Context, id string) (*model.AppChart, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *AppChartRepository) Find(ctx context.Context, id string) (*model.AppChart, error) {
	return r.store.Find(ctx, id)
}

func (r *AppChartRepository) Create(ctx context.Context, c *model.AppChart) (*model.AppChart, error) {
	return r.store.Create(ctx, c)
}

func (r *AppChartRepository) Update(ctx context.Context, id string, mutate func(*model.AppChart) error) (*model.AppChart, error) {
	return r.store.Update(ctx, id, mutate)
}

func (r *AppChartRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

func appNames(apps []*model.App) string {
	names := make([]string, 0, len(apps))
	for _, a := range apps {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
