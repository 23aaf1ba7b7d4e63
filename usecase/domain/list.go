package domain

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// ListInput filters listed domains.
type ListInput struct {
	ProjectID string `json:"project_id,omitempty"`
	AppID     string `json:"app_id,omitempty"`
}

type ListOutput struct {
	Domains []*model.Domain `json:"domains"`
}

// List returns domains ordered by hostname.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var f domain.ListFilter
	if in != nil {
		f = domain.ListFilter{ProjectID: in.ProjectID, AppID: in.AppID}
	}
	items, err := u.Repos.Domain.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Domains: items}, nil
}
