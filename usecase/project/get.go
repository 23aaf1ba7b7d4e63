package project

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// GetInput identifies the project to fetch.
type GetInput struct {
	ProjectID string `json:"project_id"`
}

// GetOutput wraps the retrieved project.
type GetOutput struct {
	Project *model.Project `json:"project"`
}

// Get retrieves a project by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.ProjectID == "" {
		return nil, model.Invalidf("project id is required")
	}
	p, err := u.Repos.Project.Find(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Project: p}, nil
}
