package entity

import (
	"context"
	"strconv"
	"strings"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// DomainKind stores a domain as an ingress in its project namespace. The
// annotations are authoritative; the route is derived from them.
var DomainKind = Kind[model.Domain]{
	Name:     "domain",
	Storage:  objstore.Ingress,
	IDLabel:  LabelDomainID,
	GetID:    func(d *model.Domain) string { return d.ID },
	SetID:    func(d *model.Domain, id string) { d.ID = id },
	Seed:     func(d *model.Domain) string { return d.Hostname },
	SortName: func(d *model.Domain) string { return d.Hostname + d.Path },
	Locate:   func(d *model.Domain) (string, string) { return d.ProjectID, "domain-" + d.ID },
	Encode:   encodeDomain,
	Decode:   decodeDomain,
}

func encodeDomain(d *model.Domain, _ any) (*objstore.Object, error) {
	obj := newObject(objstore.Ingress, d.ProjectID, "domain-"+d.ID)
	obj.Labels[LabelDomainID] = d.ID
	putLabel(obj, LabelProjectID, d.ProjectID)
	putLabel(obj, LabelAppID, d.AppID)
	putAnnotation(obj, AnnotationDomainHostname, d.Hostname)
	putAnnotation(obj, AnnotationDomainPath, d.Path)
	if d.AppPort != 0 {
		obj.Annotations[AnnotationDomainAppPort] = strconv.Itoa(int(d.AppPort))
	}
	putAnnotation(obj, AnnotationDomainTLSSecret, d.TLSSecretName)

	path := d.Path
	if path == "" {
		path = "/"
	}
	obj.Route = &objstore.Route{Host: d.Hostname, Path: path, TLSSecretName: d.TLSSecretName}
	if d.AppID != "" {
		// Charts name the app service after the release, which is the app id.
		obj.Route.ServiceName = d.AppID
		obj.Route.ServicePort = d.AppPort
	}
	obj.CreatedAt = d.CreatedAt
	return obj, nil
}

func decodeDomain(obj *objstore.Object) (*model.Domain, error) {
	d := &model.Domain{
		ID:            obj.Labels[LabelDomainID],
		ProjectID:     obj.Labels[LabelProjectID],
		AppID:         obj.Labels[LabelAppID],
		Hostname:      obj.Annotations[AnnotationDomainHostname],
		Path:          obj.Annotations[AnnotationDomainPath],
		TLSSecretName: obj.Annotations[AnnotationDomainTLSSecret],
		CreatedAt:     obj.CreatedAt,
	}
	if s := obj.Annotations[AnnotationDomainAppPort]; s != "" {
		port, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, model.Invalidf("domain %s: bad app port %q", d.ID, s)
		}
		d.AppPort = int32(port)
	}
	return d, nil
}

// DomainRepository implements domain.DomainRepository. Hostnames are unique
// across all projects.
type DomainRepository struct {
	store *Store[model.Domain]
}

var _ domain.DomainRepository = (*DomainRepository)(nil)

func NewDomainRepository(objs objstore.ObjectStore, ids *naming.Allocator) *DomainRepository {
	r := &DomainRepository{store: &Store[model.Domain]{Objects: objs, IDs: ids, Kind: DomainKind}}
	r.store.Prepare = r.prepare
	return r
}

func (r *DomainRepository) prepare(ctx context.Context, d *model.Domain) (any, error) {
	if d.ProjectID == "" {
		return nil, model.Invalidf("domain project is required")
	}
	if err := naming.ValidateHostname(d.Hostname); err != nil {
		return nil, model.Invalidf("domain hostname: %v", err)
	}
	if d.Path != "" && !strings.HasPrefix(d.Path, "/") {
		return nil, model.Invalidf("domain path %q must start with /", d.Path)
	}
	if d.AppID != "" && (d.AppPort <= 0 || d.AppPort > 65535) {
		return nil, model.Invalidf("domain app port %d out of range", d.AppPort)
	}
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range all {
		if other.ID != d.ID && strings.EqualFold(other.Hostname, d.Hostname) {
			return nil, model.Conflictf("hostname %s is already used by domain %s", d.Hostname, other.ID)
		}
	}
	return nil, nil
}

func (r *DomainRepository) List(ctx context.Context, f domain.ListFilter) ([]*model.Domain, error) {
	var reqs []objstore.Requirement
	if f.ProjectID != "" {
		reqs = append(reqs, objstore.Eq(LabelProjectID, f.ProjectID))
	}
	if f.AppID != "" {
		reqs = append(reqs, objstore.Eq(LabelAppID, f.AppID))
	}
	return r.store.List(ctx, reqs...)
}

func (r *DomainRepository) FindIfExists(ctx context.Context, id string) (*model.Domain, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *DomainRepository) Find(ctx context.Context, id string) (*model.Domain, error) {
	return r.store.Find(ctx, id)
}

func (r *DomainRepository) Create(ctx context.Context, d *model.Domain) (*model.Domain, error) {
	return r.store.Create(ctx, d)
}

func (r *DomainRepository) Update(ctx context.Context, id string, mutate func(*model.Domain) error) (*model.Domain, error) {
	return r.store.Update(ctx, id, func(d *model.Domain) error {
		projectID := d.ProjectID
		if err := mutate(d); err != nil {
			return err
		}
		d.ProjectID = projectID
		return nil
	})
}

func (r *DomainRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
