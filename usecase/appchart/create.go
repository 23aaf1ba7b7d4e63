package appchart

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create an app chart.
type CreateInput struct {
	Name   string                `json:"name" yaml:"name"`
	Fields []model.AppChartField `json:"fields" yaml:"fields"`
}

// CreateOutput wraps the created app chart.
type CreateOutput struct {
	AppChart *model.AppChart `json:"app_chart"`
}

// Create persists a new app chart.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("app chart name is required")
	}
	c, err := u.Repos.AppChart.Create(ctx, &model.AppChart{Name: in.Name, Fields: in.Fields})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{AppChart: c}, nil
}
