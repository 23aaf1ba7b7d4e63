package entity

import (
	"context"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/naming"
)

// UserKind stores a user as a secret in the system namespace. User ids carry
// no slug.
func UserKind(systemNamespace string) Kind[model.User] {
	return Kind[model.User]{
		Name:     "user",
		Storage:  objstore.Secret,
		IDLabel:  LabelUserID,
		GetID:    func(u *model.User) string { return u.ID },
		SetID:    func(u *model.User, id string) { u.ID = id },
		SortName: func(u *model.User) string { return u.Username },
		Locate: func(u *model.User) (string, string) {
			return systemNamespace, "user-" + u.ID
		},
		Encode: func(u *model.User, _ any) (*objstore.Object, error) {
			obj := newObject(objstore.Secret, systemNamespace, "user-"+u.ID)
			obj.Labels[LabelUserID] = u.ID
			putLabel(obj, LabelUsername, u.Username)
			putBytes(obj, dataPasswordHash, []byte(u.PasswordHash))
			obj.CreatedAt = u.CreatedAt
			return obj, nil
		},
		Decode: func(obj *objstore.Object) (*model.User, error) {
			hash, err := getString(obj, dataPasswordHash)
			if err != nil {
				return nil, err
			}
			return &model.User{
				ID:           obj.Labels[LabelUserID],
				Username:     obj.Labels[LabelUsername],
				PasswordHash: hash,
				CreatedAt:    obj.CreatedAt,
			}, nil
		},
	}
}

// UserRepository implements domain.UserRepository. Usernames are unique and
// indexed by label.
type UserRepository struct {
	store *Store[model.User]
}

var _ domain.UserRepository = (*UserRepository)(nil)

func NewUserRepository(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string) *UserRepository {
	r := &UserRepository{store: &Store[model.User]{Objects: objs, IDs: ids, Kind: UserKind(systemNamespace)}}
	r.store.Prepare = r.prepare
	return r
}

func (r *UserRepository) prepare(ctx context.Context, u *model.User) (any, error) {
	if err := naming.ValidateUsername(u.Username); err != nil {
		return nil, model.Invalidf("username: %v", err)
	}
	if u.PasswordHash == "" {
		return nil, model.Invalidf("user password is required")
	}
	same, err := r.store.List(ctx, objstore.Eq(LabelUsername, u.Username))
	if err != nil {
		return nil, err
	}
	for _, other := range same {
		if other.ID != u.ID {
			return nil, model.Conflictf("username %s is already taken", u.Username)
		}
	}
	return nil, nil
}

// FindByUsername returns nil without error when no user has username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, nil
	}
	users, err := r.store.List(ctx, objstore.Eq(LabelUsername, username))
	if err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, nil
	case 1:
		return users[0], nil
	default:
		return nil, model.Ambiguous("user", username, len(users))
	}
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	return r.store.List(ctx)
}

func (r *UserRepository) FindIfExists(ctx context.Context, id string) (*model.User, error) {
	return r.store.FindIfExists(ctx, id)
}

func (r *UserRepository) Find(ctx context.Context, id string) (*model.User, error) {
	return r.store.Find(ctx, id)
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return r.store.Create(ctx, u)
}

func (r *UserRepository) Update(ctx context.Context, id string, mutate func(*model.User) error) (*model.User, error) {
	return r.store.Update(ctx, id, mutate)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
