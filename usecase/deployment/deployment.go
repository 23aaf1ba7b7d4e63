// Package deployment reports the revisions of an app's continuous service.
package deployment

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// Repos holds repositories needed for deployment use cases.
type Repos struct {
	App        domain.AppRepository
	Deployment domain.DeploymentRepository
}

// UseCase wires repositories needed for deployment use cases.
type UseCase struct {
	Repos *Repos
}

// ListInput names the app whose revisions are listed.
type ListInput struct {
	AppID string `json:"app_id"`
}

// ListOutput holds the revisions, newest first.
type ListOutput struct {
	Deployments []*model.Deployment `json:"deployments"`
}

// List resolves the app's project and reads its revisions from the cluster.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil || in.AppID == "" {
		return nil, model.Invalidf("app id is required")
	}
	if u.Repos.Deployment == nil {
		return nil, model.Unsupportedf("deployments are only available with the kube store backend")
	}
	a, err := u.Repos.App.Find(ctx, in.AppID)
	if err != nil {
		return nil, err
	}
	items, err := u.Repos.Deployment.List(ctx, a.ProjectID, a.ID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Deployments: items}, nil
}
