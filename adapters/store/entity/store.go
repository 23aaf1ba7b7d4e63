// Package entity maps domain records onto label-indexed objects of an
// objstore.ObjectStore. One generic Store implements the lifecycle; each entity
// kind contributes a Kind codec and its integrity rules.
package entity

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/logging"
	"github.com/shipmight/shipmight/internal/naming"
)

// Kind describes how records of type T are stored.
type Kind[T any] struct {
	// Name is the entity kind used in errors and logs ("app", "registry").
	Name    string
	Storage objstore.StorageKind
	// IDLabel carries the record id; every object of the kind has it.
	IDLabel string

	GetID func(*T) string
	SetID func(*T, string)
	// Seed feeds the id allocator. May be nil for random ids.
	Seed func(*T) string
	// SortName is the display name List orders by.
	SortName func(*T) string
	// Locate returns where the record is stored.
	Locate func(*T) (namespace, name string)
	// Encode builds the object for rec. extra is whatever Store.Prepare returned.
	Encode func(rec *T, extra any) (*objstore.Object, error)
	Decode func(*objstore.Object) (*T, error)
}

// Store implements list/find/create/update/delete for one kind.
type Store[T any] struct {
	Objects objstore.ObjectStore
	IDs     *naming.Allocator
	Kind    Kind[T]

	// Prepare runs before every write. It validates rec and returns the extra
	// encode input. A non-nil error aborts the write before any store call.
	Prepare func(ctx context.Context, rec *T) (any, error)
	// CanDelete runs before delete. A non-nil error aborts the delete.
	CanDelete func(ctx context.Context, rec *T) error
}

// List returns every record whose object matches filters, ordered by display name.
func (s *Store[T]) List(ctx context.Context, filters ...objstore.Requirement) ([]*T, error) {
	sel := append(objstore.Selector{objstore.Has(s.Kind.IDLabel)}, filters...)
	objs, err := s.Objects.List(ctx, s.Kind.Storage, sel)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Kind.Name, err)
	}
	out := make([]*T, 0, len(objs))
	for _, o := range objs {
		rec, err := s.Kind.Decode(o)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sortByName(out, s.Kind.SortName)
	return out, nil
}

// ListObjects returns raw objects of the kind matching filters.
func (s *Store[T]) ListObjects(ctx context.Context, filters ...objstore.Requirement) ([]*objstore.Object, error) {
	sel := append(objstore.Selector{objstore.Has(s.Kind.IDLabel)}, filters...)
	objs, err := s.Objects.List(ctx, s.Kind.Storage, sel)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Kind.Name, err)
	}
	return objs, nil
}

// FindIfExists returns nil without error when no object carries id. More than
// one match is reported as model.ErrAmbiguous.
func (s *Store[T]) FindIfExists(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	objs, err := s.Objects.List(ctx, s.Kind.Storage, objstore.Selector{objstore.Eq(s.Kind.IDLabel, id)})
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", s.Kind.Name, id, err)
	}
	switch len(objs) {
	case 0:
		return nil, nil
	case 1:
		return s.Kind.Decode(objs[0])
	default:
		return nil, model.Ambiguous(s.Kind.Name, id, len(objs))
	}
}

// Find is FindIfExists with a missing record reported as model.ErrNotFound.
func (s *Store[T]) Find(ctx context.Context, id string) (*T, error) {
	rec, err := s.FindIfExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, model.NotFound(s.Kind.Name, id)
	}
	return rec, nil
}

// Create allocates an id for rec, writes it and returns the stored record.
// The caller's rec is not modified.
func (s *Store[T]) Create(ctx context.Context, rec *T) (*T, error) {
	v := *rec
	seed := ""
	if s.Kind.Seed != nil {
		seed = s.Kind.Seed(&v)
	}
	s.Kind.SetID(&v, s.IDs.Allocate(seed))
	id := s.Kind.GetID(&v)

	logger := logging.FromContext(ctx).With("kind", s.Kind.Name, "id", id)
	logger.Debug(ctx, "EntityStore:Create/s")

	obj, err := s.encode(ctx, &v)
	if err != nil {
		logger.Debug(ctx, "EntityStore:Create/efail", "err", err)
		return nil, err
	}
	if _, err := s.Objects.Create(ctx, obj.Namespace, obj); err != nil {
		logger.Warn(ctx, "EntityStore:Create/efail", "err", err)
		return nil, fmt.Errorf("create %s %s: %w", s.Kind.Name, id, err)
	}
	logger.Info(ctx, "EntityStore:Create/eok")
	return s.Find(ctx, id)
}

// Update loads the record, applies mutate, re-encodes it and replaces the
// stored object. Relation labels are recomputed from the mutated record. The
// id cannot be changed by mutate.
func (s *Store[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	cur, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(cur); err != nil {
		return nil, err
	}
	s.Kind.SetID(cur, id)

	logger := logging.FromContext(ctx).With("kind", s.Kind.Name, "id", id)
	logger.Debug(ctx, "EntityStore:Update/s")

	obj, err := s.encode(ctx, cur)
	if err != nil {
		logger.Debug(ctx, "EntityStore:Update/efail", "err", err)
		return nil, err
	}
	if _, err := s.Objects.Replace(ctx, obj.Namespace, obj.Name, obj); err != nil {
		logger.Warn(ctx, "EntityStore:Update/efail", "err", err)
		if errors.Is(err, objstore.ErrNotFound) {
			return nil, model.NotFound(s.Kind.Name, id)
		}
		return nil, fmt.Errorf("update %s %s: %w", s.Kind.Name, id, err)
	}
	logger.Info(ctx, "EntityStore:Update/eok")
	return s.Find(ctx, id)
}

// Delete removes the record after its delete gate passes.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	rec, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx).With("kind", s.Kind.Name, "id", id)
	if s.CanDelete != nil {
		if err := s.CanDelete(ctx, rec); err != nil {
			logger.Debug(ctx, "EntityStore:Delete/efail", "err", err)
			return err
		}
	}
	namespace, name := s.Kind.Locate(rec)
	logger.Debug(ctx, "EntityStore:Delete/s")
	if err := s.Objects.Delete(ctx, s.Kind.Storage, namespace, name); err != nil {
		logger.Warn(ctx, "EntityStore:Delete/efail", "err", err)
		if errors.Is(err, objstore.ErrNotFound) {
			return model.NotFound(s.Kind.Name, id)
		}
		return fmt.Errorf("delete %s %s: %w", s.Kind.Name, id, err)
	}
	logger.Info(ctx, "EntityStore:Delete/eok")
	return nil
}

func (s *Store[T]) encode(ctx context.Context, rec *T) (*objstore.Object, error) {
	var extra any
	if s.Prepare != nil {
		x, err := s.Prepare(ctx, rec)
		if err != nil {
			return nil, err
		}
		extra = x
	}
	obj, err := s.Kind.Encode(rec, extra)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.Kind.Name, err)
	}
	return obj, nil
}
