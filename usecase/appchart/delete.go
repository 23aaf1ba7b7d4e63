package appchart

import "context"

type DeleteInput struct {
	AppChartID string `json:"app_chart_id"`
}

type DeleteOutput struct{}

// Delete removes an app chart. It fails with a conflict while apps use it.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.AppChartID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.AppChart.Delete(ctx, in.AppChartID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
