package app

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// ListInput filters listed apps. An empty ProjectID lists every project.
type ListInput struct {
	ProjectID string `json:"project_id,omitempty"`
}

// ListOutput wraps listed apps.
type ListOutput struct {
	Apps []*model.App `json:"apps"`
}

func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var f domain.ListFilter
	if in != nil {
		f.ProjectID = in.ProjectID
	}
	items, err := u.Repos.App.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Apps: items}, nil
}
