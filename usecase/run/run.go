// Package run reports executions of an app's batch job.
package run

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// Repos holds repositories needed for run use cases.
type Repos struct {
	App domain.AppRepository
	Run domain.RunRepository
}

// UseCase wires repositories needed for run use cases.
type UseCase struct {
	Repos *Repos
}

func (u *UseCase) available() error {
	if u.Repos.Run == nil {
		return model.Unsupportedf("runs are only available with the kube store backend")
	}
	return nil
}

type ListInput struct {
	AppID string `json:"app_id"`
}

// ListOutput holds the runs, newest first.
type ListOutput struct {
	Runs []*model.Run `json:"runs"`
}

func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil || in.AppID == "" {
		return nil, model.Invalidf("app id is required")
	}
	if err := u.available(); err != nil {
		return nil, err
	}
	a, err := u.Repos.App.Find(ctx, in.AppID)
	if err != nil {
		return nil, err
	}
	items, err := u.Repos.Run.List(ctx, a.ProjectID, a.ID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Runs: items}, nil
}

// GetInput identifies a run by the job name within a project.
type GetInput struct {
	ProjectID string `json:"project_id"`
	RunID     string `json:"run_id"`
}

type GetOutput struct {
	Run *model.Run `json:"run"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.ProjectID == "" || in.RunID == "" {
		return nil, model.Invalidf("project id and run id are required")
	}
	if err := u.available(); err != nil {
		return nil, err
	}
	r, err := u.Repos.Run.Find(ctx, in.ProjectID, in.RunID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Run: r}, nil
}
