package project

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create a project.
type CreateInput struct {
	// Name is the display name; the id is derived from it.
	Name string `json:"name" yaml:"name"`
}

// CreateOutput wraps the created project.
type CreateOutput struct {
	Project *model.Project `json:"project"`
}

// Create persists a new project and its namespace.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("project name is required")
	}
	p, err := u.Repos.Project.Create(ctx, &model.Project{Name: in.Name})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Project: p}, nil
}
