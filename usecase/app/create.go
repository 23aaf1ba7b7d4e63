package app

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create an app.
type CreateInput struct {
	ProjectID  string         `json:"project_id" yaml:"projectId"`
	Name       string         `json:"name" yaml:"name"`
	AppChartID string         `json:"app_chart_id" yaml:"appChartId"`
	Values     map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// CreateOutput wraps the created app.
type CreateOutput struct {
	App *model.App `json:"app"`
}

// Create persists a new app. Values are checked against the app chart before
// anything is written.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("app name is required")
	}
	if in.ProjectID == "" {
		return nil, model.Invalidf("app project is required")
	}
	if in.AppChartID == "" {
		return nil, model.Invalidf("app chart is required")
	}
	if _, err := u.Repos.Project.Find(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	a, err := u.Repos.App.Create(ctx, &model.App{
		ProjectID:  in.ProjectID,
		Name:       in.Name,
		AppChartID: in.AppChartID,
		Values:     in.Values,
	})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{App: a}, nil
}
