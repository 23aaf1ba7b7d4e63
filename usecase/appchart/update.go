package appchart

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// UpdateInput specifies app chart fields that can be changed.
type UpdateInput struct {
	AppChartID string  `json:"app_chart_id"`
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	// Fields replaces the declaration when non-nil. Existing app values are
	// not revalidated until the app is next written.
	Fields []model.AppChartField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type UpdateOutput struct {
	AppChart *model.AppChart `json:"app_chart"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.AppChartID == "" {
		return nil, model.Invalidf("app chart id is required")
	}
	if in.Name != nil && *in.Name == "" {
		return nil, model.Invalidf("app chart name must not be empty")
	}
	c, err := u.Repos.AppChart.Update(ctx, in.AppChartID, func(c *model.AppChart) error {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Fields != nil {
			c.Fields = in.Fields
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{AppChart: c}, nil
}
