package project

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// UpdateInput specifies project fields that can be changed.
type UpdateInput struct {
	ProjectID string `json:"project_id"`
	// Name optionally renames the project. The id does not change.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// UpdateOutput wraps the updated project.
type UpdateOutput struct {
	Project *model.Project `json:"project"`
}

// Update applies provided changes to a project.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.ProjectID == "" {
		return nil, model.Invalidf("project id is required")
	}
	if in.Name != nil && *in.Name == "" {
		return nil, model.Invalidf("project name must not be empty")
	}
	p, err := u.Repos.Project.Update(ctx, in.ProjectID, func(p *model.Project) error {
		if in.Name != nil {
			p.Name = *in.Name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Project: p}, nil
}
