package file

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create a file.
type CreateInput struct {
	ProjectID string `json:"project_id" yaml:"projectId"`
	Name      string `json:"name" yaml:"name"`
	Content   []byte `json:"content,omitempty" yaml:"content,omitempty"`
}

type CreateOutput struct {
	File *model.File `json:"file"`
}

func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.Invalidf("file name is required")
	}
	if in.ProjectID == "" {
		return nil, model.Invalidf("file project is required")
	}
	if _, err := u.Repos.Project.Find(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	f, err := u.Repos.File.Create(ctx, &model.File{ProjectID: in.ProjectID, Name: in.Name, Content: in.Content})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{File: f}, nil
}

type GetInput struct {
	FileID string `json:"file_id"`
}

type GetOutput struct {
	File *model.File `json:"file"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.FileID == "" {
		return nil, model.Invalidf("file id is required")
	}
	f, err := u.Repos.File.Find(ctx, in.FileID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{File: f}, nil
}

type ListInput struct {
	ProjectID string `json:"project_id,omitempty"`
}

type ListOutput struct {
	Files []*model.File `json:"files"`
}

func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var f domain.ListFilter
	if in != nil {
		f.ProjectID = in.ProjectID
	}
	items, err := u.Repos.File.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Files: items}, nil
}

// UpdateInput renames a file or replaces its content. A nil Content keeps the
// stored content.
type UpdateInput struct {
	FileID  string  `json:"file_id"`
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
	Content []byte  `json:"content,omitempty" yaml:"content,omitempty"`
}

type UpdateOutput struct {
	File *model.File `json:"file"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.FileID == "" {
		return nil, model.Invalidf("file id is required")
	}
	f, err := u.Repos.File.Update(ctx, in.FileID, func(f *model.File) error {
		if in.Name != nil {
			f.Name = *in.Name
		}
		if in.Content != nil {
			f.Content = in.Content
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{File: f}, nil
}

type DeleteInput struct {
	FileID string `json:"file_id"`
}

type DeleteOutput struct{}

// Delete removes a file. It fails with a conflict while any app mounts it.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.FileID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.File.Delete(ctx, in.FileID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

// UsageInput selects the project whose file usage is reported.
type UsageInput struct {
	ProjectID string `json:"project_id"`
}

// UsageOutput maps file ids to the apps mounting them. Files nobody mounts
// are absent.
type UsageOutput struct {
	Usage map[string][]*model.App `json:"usage"`
}

func (u *UseCase) Usage(ctx context.Context, in *UsageInput) (*UsageOutput, error) {
	if in == nil || in.ProjectID == "" {
		return nil, model.Invalidf("project id is required")
	}
	m, err := u.Repos.File.Usage(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	return &UsageOutput{Usage: m}, nil
}
