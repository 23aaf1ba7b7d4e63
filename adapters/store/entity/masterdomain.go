package entity

import (
	"context"
	"strings"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// MasterDomainKind stores a master domain as a secret in the system namespace.
func MasterDomainKind(systemNamespace string) Kind[model.MasterDomain] {
	return Kind[model.MasterDomain]{
		Name:     "master domain",
		Storage:  objstore.Secret,
		IDLabel:  LabelMasterDomainID,
		GetID:    func(d *model.MasterDomain) string { return d.ID },
		SetID:    func(d *model.MasterDomain, id string) { d.ID = id },
		Seed:     func(d *model.MasterDomain) string { return d.Hostname },
		SortName: func(d *model.MasterDomain) string { return d.Hostname },
		Locate: func(d *model.MasterDomain) (string, string) {
			return systemNamespace, "master-domain-" + d.ID
		},
		Encode: func(d *model.MasterDomain, _ any) (*objstore.Object, error) {
			obj := newObject(objstore.Secret, systemNamespace, "master-domain-"+d.ID)
			obj.Labels[LabelMasterDomainID] = d.ID
			putAnnotation(obj, AnnotationMasterDomainHost, d.Hostname)
			putBytes(obj, dataTLSCert, []byte(d.TLSCert))
			putBytes(obj, dataTLSKey, []byte(d.TLSKey))
			obj.CreatedAt = d.CreatedAt
			return obj, nil
		},
		Decode: decodeMasterDomain,
	}
}

func decodeMasterDomain(obj *objstore.Object) (*model.MasterDomain, error) {
	d := &model.MasterDomain{
		ID:        obj.Labels[LabelMasterDomainID],
		Hostname:  obj.Annotations[AnnotationMasterDomainHost],
		CreatedAt: obj.CreatedAt,
	}
	var err error
	if d.TLSCert, err = getString(obj, dataTLSCert); err != nil {
		return nil, err
	}
	if d.TLSKey, err = getString(obj, dataTLSKey); err != nil {
		return nil, err
	}
	return d, nil
}

// MasterDomainRepository implements domain.MasterDomainRepository.
type MasterDomainRepository struct {
	store *Store[model.MasterDomain]
}

var _ domain.MasterDomainRepository = (*MasterDomainRepository)(nil)

func NewMasterDomainRepository(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string) *MasterDomainRepository {
	r := &MasterDomainRepository{store: &Store[model.MasterDomain]{Objects: objs, IDs: ids, Kind: MasterDomainKind(systemNamespace)}}
	r.store.Prepare = r.prepare
	return r
}

func (r *MasterDomainRepository) prepare(ctx context.Context, d *model.MasterDomain) (any, error) {
	if err := naming.ValidateHostname(d.Hostname); err != nil {
		return nil, model.Invalidf("master domain hostname: %v", err)
	}
	if (d.TLSCert == "") != (d.TLSKey == "") {
		return nil, model.Invalidf("master domain TLS certificate and key must be set together")
	}
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range all {
		if other.ID != d.ID && strings.EqualFold(other.Hostname, d.Hostname) {
			return nil, model.Conflictf("hostname %s is already used by master domain %s", d.Hostname, other.ID)
		}
	}
	return nil, nil
}

func (r *MasterDomainRepository) List(ctx context.Context) ([]*model.MasterDomain, error) {
	return r.store.List(ctx)
}

func (r *MasterDomainRepository) FindIfExists(ctx context.Context, id string) (*model.MasterDomain, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *MasterDomainRepository) Find(ctx context.Context, id string) (*model.MasterDomain, error) {
	return r.store.Find(ctx, id)
}

func (r *MasterDomainRepository) Create(ctx context.Context, d *model.MasterDomain) (*model.MasterDomain, error) {
	return r.store.Create(ctx, d)
}

func (r *MasterDomainRepository) Update(ctx context.Context, id string, mutate func(*model.MasterDomain) error) (*model.MasterDomain, error) {
	return r.store.Update(ctx, id, mutate)
}

func (r *MasterDomainRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
