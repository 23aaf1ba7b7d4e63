package app

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// UpdateInput specifies app fields that can be changed.
type UpdateInput struct {
	AppID string  `json:"app_id"`
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Values replaces the whole value set when non-nil.
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// UpdateOutput wraps the updated app.
type UpdateOutput struct {
	App *model.App `json:"app"`
}

// Update applies provided changes to an app. Relation labels are rebuilt from
// the new values.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.AppID == "" {
		return nil, model.Invalidf("app id is required")
	}
	if in.Name != nil && *in.Name == "" {
		return nil, model.Invalidf("app name must not be empty")
	}
	a, err := u.Repos.App.Update(ctx, in.AppID, func(a *model.App) error {
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Values != nil {
			a.Values = in.Values
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{App: a}, nil
}
