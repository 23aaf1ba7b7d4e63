package registry

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create a registry. AuthMethod defaults to none.
type CreateInput struct {
	Name       string                   `json:"name" yaml:"name"`
	URL        string                   `json:"url" yaml:"url"`
	AuthMethod model.RegistryAuthMethod `json:"auth_method,omitempty" yaml:"authMethod,omitempty"`
	AuthToken  string                   `json:"auth_token,omitempty" yaml:"authToken,omitempty"`
}

type CreateOutput struct {
	Registry *model.Registry `json:"registry"`
}

func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("registry name is required")
	}
	method := in.AuthMethod
	if method == "" {
		method = model.RegistryAuthNone
	}
	r, err := u.Repos.Registry.Create(ctx, &model.Registry{Name: in.Name, URL: in.URL, AuthMethod: method, AuthToken: in.AuthToken})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Registry: r}, nil
}

type GetInput struct {
	RegistryID string `json:"registry_id"`
}

type GetOutput struct {
	Registry *model.Registry `json:"registry"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.RegistryID == "" {
		return nil, model.Invalidf("registry id is required")
	}
	r, err := u.Repos.Registry.Find(ctx, in.RegistryID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Registry: r}, nil
}

type ListInput struct{}

type ListOutput struct {
	Registries []*model.Registry `json:"registries"`
}

func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Registry.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Registries: items}, nil
}

// UpdateInput specifies registry fields that can be changed. Switching the
// auth method to none drops the stored token.
type UpdateInput struct {
	RegistryID string                    `json:"registry_id"`
	Name       *string                   `json:"name,omitempty" yaml:"name,omitempty"`
	URL        *string                   `json:"url,omitempty" yaml:"url,omitempty"`
	AuthMethod *model.RegistryAuthMethod `json:"auth_method,omitempty" yaml:"authMethod,omitempty"`
	AuthToken  *string                   `json:"auth_token,omitempty" yaml:"authToken,omitempty"`
}

type UpdateOutput struct {
	Registry *model.Registry `json:"registry"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.RegistryID == "" {
		return nil, model.Invalidf("registry id is required")
	}
	r, err := u.Repos.Registry.Update(ctx, in.RegistryID, func(r *model.Registry) error {
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.URL != nil {
			r.URL = *in.URL
		}
		if in.AuthMethod != nil {
			r.AuthMethod = *in.AuthMethod
		}
		if in.AuthToken != nil {
			r.AuthToken = *in.AuthToken
		}
		if r.AuthMethod == model.RegistryAuthNone {
			r.AuthToken = ""
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Registry: r}, nil
}

type DeleteInput struct {
	RegistryID string `json:"registry_id"`
}

type DeleteOutput struct{}

// Delete removes a registry. It fails with a conflict while any app selects it.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.RegistryID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Registry.Delete(ctx, in.RegistryID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

type UsageInput struct{}

// UsageOutput maps registry ids to the apps selecting them.
type UsageOutput struct {
	Usage map[string][]*model.App `json:"usage"`
}

func (u *UseCase) Usage(ctx context.Context, _ *UsageInput) (*UsageOutput, error) {
	m, err := u.Repos.Registry.Usage(ctx)
	if err != nil {
		return nil, err
	}
	return &UsageOutput{Usage: m}, nil
}
