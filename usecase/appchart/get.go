package appchart

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

type GetInput struct {
	AppChartID string `json:"app_chart_id"`
}

type GetOutput struct {
	AppChart *model.AppChart `json:"app_chart"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.AppChartID == "" {
		return nil, model.Invalidf("app chart id is required")
	}
	c, err := u.Repos.AppChart.Find(ctx, in.AppChartID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{AppChart: c}, nil
}
