package appchart

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

type ListInput struct{}

type ListOutput struct {
	AppCharts []*model.AppChart `json:"app_charts"`
}

func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.AppChart.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{AppCharts: items}, nil
}
