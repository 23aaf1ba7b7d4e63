package deployhook

import (
	"context"
	"crypto/subtle"

	utilrand "k8s.io/apimachinery/pkg/util/rand"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

const tokenLength = 40

func (u *UseCase) newToken() string {
	if u.NewToken != nil {
		return u.NewToken()
	}
	return utilrand.String(tokenLength)
}

// CreateInput contains data to create a deploy hook. The project is taken
// from the app.
type CreateInput struct {
	AppID string `json:"app_id" yaml:"appId"`
	Name  string `json:"name" yaml:"name"`
}

type CreateOutput struct {
	DeployHook *model.DeployHook `json:"deploy_hook"`
}

func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("deploy hook name is required")
	}
	if in.AppID == "" {
		return nil, model.Invalidf("deploy hook app is required")
	}
	a, err := u.Repos.App.Find(ctx, in.AppID)
	if err != nil {
		return nil, err
	}
	h, err := u.Repos.DeployHook.Create(ctx, &model.DeployHook{
		ProjectID: a.ProjectID,
		AppID:     a.ID,
		Name:      in.Name,
		Token:     u.newToken(),
	})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{DeployHook: h}, nil
}

type GetInput struct {
	DeployHookID string `json:"deploy_hook_id"`
}

type GetOutput struct {
	DeployHook *model.DeployHook `json:"deploy_hook"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.DeployHookID == "" {
		return nil, model.Invalidf("deploy hook id is required")
	}
	h, err := u.Repos.DeployHook.Find(ctx, in.DeployHookID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{DeployHook: h}, nil
}

type ListInput struct {
	ProjectID string `json:"project_id,omitempty"`
	AppID     string `json:"app_id,omitempty"`
}

type ListOutput struct {
	DeployHooks []*model.DeployHook `json:"deploy_hooks"`
}

func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var f domain.ListFilter
	if in != nil {
		f = domain.ListFilter{ProjectID: in.ProjectID, AppID: in.AppID}
	}
	items, err := u.Repos.DeployHook.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListOutput{DeployHooks: items}, nil
}

// UpdateInput renames a hook or rotates its token.
type UpdateInput struct {
	DeployHookID string  `json:"deploy_hook_id"`
	Name         *string `json:"name,omitempty" yaml:"name,omitempty"`
	RotateToken  bool    `json:"rotate_token,omitempty" yaml:"rotateToken,omitempty"`
}

type UpdateOutput struct {
	DeployHook *model.DeployHook `json:"deploy_hook"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.DeployHookID == "" {
		return nil, model.Invalidf("deploy hook id is required")
	}
	h, err := u.Repos.DeployHook.Update(ctx, in.DeployHookID, func(h *model.DeployHook) error {
		if in.Name != nil {
			h.Name = *in.Name
		}
		if in.RotateToken {
			h.Token = u.newToken()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{DeployHook: h}, nil
}

type DeleteInput struct {
	DeployHookID string `json:"deploy_hook_id"`
}

type DeleteOutput struct{}

func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.DeployHookID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.DeployHook.Delete(ctx, in.DeployHookID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

// VerifyInput carries a token presented by an external system.
type VerifyInput struct {
	DeployHookID string `json:"deploy_hook_id"`
	Token        string `json:"token"`
}

// VerifyOutput names the app the hook deploys.
type VerifyOutput struct {
	DeployHook *model.DeployHook `json:"deploy_hook"`
}

// Verify checks the token of a hook. A wrong token reports the hook as not found.
func (u *UseCase) Verify(ctx context.Context, in *VerifyInput) (*VerifyOutput, error) {
	if in == nil || in.DeployHookID == "" || in.Token == "" {
		return nil, model.Invalidf("deploy hook id and token are required")
	}
	h, err := u.Repos.DeployHook.Find(ctx, in.DeployHookID)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(h.Token), []byte(in.Token)) != 1 {
		return nil, model.NotFound("deploy hook", in.DeployHookID)
	}
	return &VerifyOutput{DeployHook: h}, nil
}
