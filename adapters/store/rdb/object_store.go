package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/shipmight/shipmight/adapters/store/objstore"
)

// ObjectStore implements objstore.ObjectStore on a single SQL table. It keeps
// the cluster's semantics that matter to the entity store: namespaced objects
// need their namespace, and deleting a namespace deletes its contents.
// Label selectors are evaluated in process.
type ObjectStore struct {
	db  *gorm.DB
	Now func() time.Time
}

var _ objstore.ObjectStore = (*ObjectStore)(nil)

func NewObjectStore(db *gorm.DB) *ObjectStore { return &ObjectStore{db: db} }

func (s *ObjectStore) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC().Truncate(time.Second)
}

func namespaceOf(kind objstore.StorageKind, namespace string) string {
	if kind.Namespaced() {
		return namespace
	}
	return ""
}

func marshalText(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toRecord(obj *objstore.Object, namespace string) (*ObjectRecord, error) {
	rec := &ObjectRecord{Kind: string(obj.Kind), Namespace: namespaceOf(obj.Kind, namespace), Name: obj.Name}
	var err error
	if rec.Labels, err = marshalText(obj.Labels); err != nil {
		return nil, fmt.Errorf("encode labels: %w", err)
	}
	if rec.Annotations, err = marshalText(obj.Annotations); err != nil {
		return nil, fmt.Errorf("encode annotations: %w", err)
	}
	if rec.Data, err = marshalText(obj.Data); err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}
	if obj.Route != nil {
		if rec.Route, err = marshalText(obj.Route); err != nil {
			return nil, fmt.Errorf("encode route: %w", err)
		}
	}
	return rec, nil
}

func toObject(rec *ObjectRecord) (*objstore.Object, error) {
	obj := &objstore.Object{
		Kind:        objstore.StorageKind(rec.Kind),
		Namespace:   rec.Namespace,
		Name:        rec.Name,
		Labels:      map[string]string{},
		Annotations: map[string]string{},
		Data:        map[string]string{},
		CreatedAt:   rec.CreatedAt.UTC(),
	}
	for _, f := range []struct {
		text string
		dst  any
	}{
		{rec.Labels, &obj.Labels},
		{rec.Annotations, &obj.Annotations},
		{rec.Data, &obj.Data},
	} {
		if f.text == "" || f.text == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(f.text), f.dst); err != nil {
			return nil, fmt.Errorf("decode %s %s/%s: %w", rec.Kind, rec.Namespace, rec.Name, err)
		}
	}
	if rec.Route != "" {
		obj.Route = &objstore.Route{}
		if err := json.Unmarshal([]byte(rec.Route), obj.Route); err != nil {
			return nil, fmt.Errorf("decode route %s/%s: %w", rec.Namespace, rec.Name, err)
		}
	}
	return obj, nil
}

func find(tx *gorm.DB, kind objstore.StorageKind, namespace, name string) (*ObjectRecord, error) {
	var rec ObjectRecord
	err := tx.First(&rec, "kind = ? AND namespace = ? AND name = ?", string(kind), namespaceOf(kind, namespace), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *ObjectStore) List(ctx context.Context, kind objstore.StorageKind, sel objstore.Selector) ([]*objstore.Object, error) {
	ls, err := sel.Compile()
	if err != nil {
		return nil, err
	}
	var recs []ObjectRecord
	if err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("namespace ASC, name ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	var out []*objstore.Object
	for i := range recs {
		obj, err := toObject(&recs[i])
		if err != nil {
			return nil, err
		}
		if ls.Matches(labels.Set(obj.Labels)) {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (s *ObjectStore) Create(ctx context.Context, namespace string, obj *objstore.Object) (*objstore.Object, error) {
	if obj == nil || obj.Name == "" {
		return nil, fmt.Errorf("object name is empty")
	}
	rec, err := toRecord(obj, namespace)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = s.now()
	rec.UpdatedAt = rec.CreatedAt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if obj.Kind.Namespaced() {
			ns, err := find(tx, objstore.Namespace, "", namespace)
			if err != nil {
				return err
			}
			if ns == nil {
				return fmt.Errorf("%w: namespace %s", objstore.ErrNotFound, namespace)
			}
		}
		cur, err := find(tx, obj.Kind, namespace, obj.Name)
		if err != nil {
			return err
		}
		if cur != nil {
			return fmt.Errorf("%w: %s %s/%s", objstore.ErrAlreadyExists, obj.Kind, rec.Namespace, obj.Name)
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, err
	}
	return toObject(rec)
}

func (s *ObjectStore) Replace(ctx context.Context, namespace, name string, obj *objstore.Object) (*objstore.Object, error) {
	next := obj.DeepCopy()
	next.Name = name
	rec, err := toRecord(next, namespace)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := find(tx, obj.Kind, namespace, name)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("%w: %s %s/%s", objstore.ErrNotFound, obj.Kind, rec.Namespace, name)
		}
		rec.CreatedAt = cur.CreatedAt
		rec.UpdatedAt = s.now()
		return tx.Save(rec).Error
	})
	if err != nil {
		return nil, err
	}
	return toObject(rec)
}

func (s *ObjectStore) Delete(ctx context.Context, kind objstore.StorageKind, namespace, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("kind = ? AND namespace = ? AND name = ?", string(kind), namespaceOf(kind, namespace), name).Delete(&ObjectRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s %s/%s", objstore.ErrNotFound, kind, namespace, name)
		}
		if kind == objstore.Namespace {
			return tx.Where("namespace = ?", name).Delete(&ObjectRecord{}).Error
		}
		return nil
	})
}
