package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/logging"
	"github.com/shipmight/shipmight/internal/naming"
)

// AppKind stores an app as a secret in its project namespace. Encode expects
// the app's *model.AppChart as extra to derive relation labels; without it the
// object carries no links.
var AppKind = Kind[model.App]{
	Name:     "app",
	Storage:  objstore.Secret,
	IDLabel:  LabelAppID,
	GetID:    func(a *model.App) string { return a.ID },
	SetID:    func(a *model.App, id string) { a.ID = id },
	Seed:     func(a *model.App) string { return a.Name },
	SortName: func(a *model.App) string { return a.Name },
	Locate:   func(a *model.App) (string, string) { return a.ProjectID, "app-" + a.ID },
	Encode:   encodeApp,
	Decode:   decodeApp,
}

func encodeApp(a *model.App, extra any) (*objstore.Object, error) {
	obj := newObject(objstore.Secret, a.ProjectID, "app-"+a.ID)
	obj.Labels[LabelAppID] = a.ID
	putLabel(obj, LabelProjectID, a.ProjectID)
	putLabel(obj, LabelAppChartID, a.AppChartID)
	if chart, ok := extra.(*model.AppChart); ok && chart != nil {
		var links []Link
		for _, id := range chart.RegistryIDs(a.Values) {
			links = append(links, Link{Relation: AppRegistry, TargetID: id})
		}
		for _, id := range chart.FileIDs(a.Values) {
			links = append(links, Link{Relation: AppFile, TargetID: id})
		}
		for k, v := range ToLinkLabels(links) {
			if errs := validation.IsQualifiedName(k); len(errs) > 0 {
				return nil, model.Invalidf("app %s: link label %q: %s", a.ID, k, strings.Join(errs, ", "))
			}
			obj.Labels[k] = v
		}
	}
	putAnnotation(obj, AnnotationAppName, a.Name)
	if err := putJSON(obj, dataValues, a.Values); err != nil {
		return nil, err
	}
	obj.CreatedAt = a.CreatedAt
	return obj, nil
}

func decodeApp(obj *objstore.Object) (*model.App, error) {
	a := &model.App{
		ID:         obj.Labels[LabelAppID],
		ProjectID:  obj.Labels[LabelProjectID],
		Name:       obj.Annotations[AnnotationAppName],
		AppChartID: obj.Labels[LabelAppChartID],
		CreatedAt:  obj.CreatedAt,
	}
	if err := getJSON(obj, dataValues, &a.Values); err != nil {
		return nil, err
	}
	return a, nil
}

// AppRepository implements domain.AppRepository. Values are validated against
// the app chart on every write. Deleting an app also deletes its deploy hooks
// and domains.
type AppRepository struct {
	store      *Store[model.App]
	charts     *Store[model.AppChart]
	registries *Store[model.Registry]
	files      *Store[model.File]
	hooks      *DeployHookRepository
	domains    *DomainRepository
}

var _ domain.AppRepository = (*AppRepository)(nil)

func NewAppRepository(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string, hooks *DeployHookRepository, domains *DomainRepository) *AppRepository {
	r := &AppRepository{
		store:      &Store[model.App]{Objects: objs, IDs: ids, Kind: AppKind},
		charts:     &Store[model.AppChart]{Objects: objs, IDs: ids, Kind: AppChartKind(systemNamespace)},
		registries: &Store[model.Registry]{Objects: objs, IDs: ids, Kind: RegistryKind(systemNamespace)},
		files:      &Store[model.File]{Objects: objs, IDs: ids, Kind: FileKind},
		hooks:      hooks,
		domains:    domains,
	}
	r.store.Prepare = r.prepare
	return r
}

func (r *AppRepository) prepare(ctx context.Context, a *model.App) (any, error) {
	if a.Name == "" {
		return nil, model.Invalidf("app name is required")
	}
	if a.ProjectID == "" {
		return nil, model.Invalidf("app project is required")
	}
	if a.AppChartID == "" {
		return nil, model.Invalidf("app chart is required")
	}
	chart, err := r.charts.FindIfExists(ctx, a.AppChartID)
	if err != nil {
		return nil, err
	}
	if chart == nil {
		return nil, model.Invalidf("app chart %q does not exist", a.AppChartID)
	}
	if err := chart.ValidateValues(a.Values); err != nil {
		return nil, err
	}
	if err := r.checkLinks(ctx, a, chart); err != nil {
		return nil, err
	}
	return chart, nil
}

// checkLinks requires every referenced registry to exist and every mounted
// file to exist in the app's project.
func (r *AppRepository) checkLinks(ctx context.Context, a *model.App, chart *model.AppChart) error {
	for _, id := range chart.RegistryIDs(a.Values) {
		reg, err := r.registries.FindIfExists(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return model.Invalidf("registry %q does not exist", id)
		}
	}
	for _, id := range chart.FileIDs(a.Values) {
		f, err := r.files.FindIfExists(ctx, id)
		if err != nil {
			return err
		}
		if f == nil || f.ProjectID != a.ProjectID {
			return model.Invalidf("file %q does not exist in project %q", id, a.ProjectID)
		}
	}
	return nil
}

func (r *AppRepository) List(ctx context.Context, f domain.ListFilter) ([]*model.App, error) {
	var reqs []objstore.Requirement
	if f.ProjectID != "" {
		reqs = append(reqs, objstore.Eq(LabelProjectID, f.ProjectID))
	}
	if f.AppID != "" {
		reqs = append(reqs, objstore.Eq(LabelAppID, f.AppID))
	}
	return r.store.List(ctx, reqs...)
}

func (r *AppRepository) FindIfExists(ctx context.Context, id string) (*model.App, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *AppRepository) Find(ctx context.Context, id string) (*model.App, error) {
	return r.store.Find(ctx, id)
}

func (r *AppRepository) Create(ctx context.Context, a *model.App) (*model.App, error) {
	return r.store.Create(ctx, a)
}

// Update keeps the app in its project regardless of what mutate does.
func (r *AppRepository) Update(ctx context.Context, id string, mutate func(*model.App) error) (*model.App, error) {
	return r.store.Update(ctx, id, func(a *model.App) error {
		projectID := a.ProjectID
		if err := mutate(a); err != nil {
			return err
		}
		a.ProjectID = projectID
		return nil
	})
}

// Delete removes the app, then its deploy hooks and domains. Cleanup is best
// effort: every dependent is attempted and failures are returned together.
func (r *AppRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	return r.cleanup(ctx, id)
}

func (r *AppRepository) cleanup(ctx context.Context, appID string) error {
	logger := logging.FromContext(ctx).With("appId", appID)
	var errs error

	if r.hooks != nil {
		hooks, err := r.hooks.List(ctx, domain.ListFilter{AppID: appID})
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		for _, h := range hooks {
			if err := r.hooks.Delete(ctx, h.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
				logger.Warn(ctx, "EntityStore:Cleanup/efail", "kind", "deploy hook", "id", h.ID, "err", err)
				errs = multierr.Append(errs, fmt.Errorf("delete deploy hook %s: %w", h.ID, err))
				continue
			}
			logger.Info(ctx, "EntityStore:Cleanup/eok", "kind", "deploy hook", "id", h.ID)
		}
	}

	if r.domains != nil {
		domains, err := r.domains.List(ctx, domain.ListFilter{AppID: appID})
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		for _, d := range domains {
			if err := r.domains.Delete(ctx, d.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
				logger.Warn(ctx, "EntityStore:Cleanup/efail", "kind", "domain", "id", d.ID, "err", err)
				errs = multierr.Append(errs, fmt.Errorf("delete domain %s: %w", d.ID, err))
				continue
			}
			logger.Info(ctx, "EntityStore:Cleanup/eok", "kind", "domain", "id", d.ID)
		}
	}

	if errs != nil {
		return fmt.Errorf("app %s deleted, cleanup incomplete: %w", appID, errs)
	}
	return nil
}
