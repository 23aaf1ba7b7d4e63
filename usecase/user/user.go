package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shipmight/shipmight/domain/model"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// ErrInvalidCredentials is returned by Authenticate for an unknown username or
// a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid username or password")

func (u *UseCase) hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", model.Invalidf("password must be at least %d characters", MinPasswordLength)
	}
	cost := u.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", model.Invalidf("password is too long")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CreateInput contains data to create a user.
type CreateInput struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

type CreateOutput struct {
	User *model.User `json:"user"`
}

// Create stores a new user with a bcrypt hash of Password. Usernames are unique.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Username == "" {
		return nil, model.Invalidf("username is required")
	}
	h, err := u.hash(in.Password)
	if err != nil {
		return nil, err
	}
	usr, err := u.Repos.User.Create(ctx, &model.User{Username: in.Username, PasswordHash: h})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{User: usr}, nil
}

type GetInput struct {
	UserID string `json:"user_id"`
}

type GetOutput struct {
	User *model.User `json:"user"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.UserID == "" {
		return nil, model.Invalidf("user id is required")
	}
	usr, err := u.Repos.User.Find(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{User: usr}, nil
}

type ListInput struct{}

type ListOutput struct {
	Users []*model.User `json:"users"`
}

func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.User.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Users: items}, nil
}

// UpdateInput changes the username or the password of a user.
type UpdateInput struct {
	UserID   string  `json:"user_id"`
	Username *string `json:"username,omitempty" yaml:"username,omitempty"`
	Password *string `json:"password,omitempty" yaml:"password,omitempty"`
}

type UpdateOutput struct {
	User *model.User `json:"user"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.UserID == "" {
		return nil, model.Invalidf("user id is required")
	}
	var h string
	if in.Password != nil {
		var err error
		if h, err = u.hash(*in.Password); err != nil {
			return nil, err
		}
	}
	usr, err := u.Repos.User.Update(ctx, in.UserID, func(usr *model.User) error {
		if in.Username != nil {
			usr.Username = *in.Username
		}
		if h != "" {
			usr.PasswordHash = h
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{User: usr}, nil
}

type DeleteInput struct {
	UserID string `json:"user_id"`
}

type DeleteOutput struct{}

func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.UserID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.User.Delete(ctx, in.UserID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

// AuthenticateInput carries login credentials.
type AuthenticateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthenticateOutput struct {
	User *model.User `json:"user"`
}

// Authenticate resolves the user by username and checks the password.
func (u *UseCase) Authenticate(ctx context.Context, in *AuthenticateInput) (*AuthenticateOutput, error) {
	if in == nil || in.Username == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}
	usr, err := u.Repos.User.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &AuthenticateOutput{User: usr}, nil
}
