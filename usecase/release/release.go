// Package release reports the installed chart revisions of an app.
package release

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
)

// Repos holds repositories needed for release use cases.
type Repos struct {
	App     domain.AppRepository
	Release domain.ReleaseRepository
}

// UseCase wires repositories needed for release use cases.
type UseCase struct {
	Repos *Repos
}

type ListInput struct {
	AppID string `json:"app_id"`
}

// ListOutput holds the releases, highest revision first.
type ListOutput struct {
	Releases []*model.Release `json:"releases"`
}

func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil || in.AppID == "" {
		return nil, model.Invalidf("app id is required")
	}
	if u.Repos.Release == nil {
		return nil, model.Unsupportedf("releases are only available with the kube store backend")
	}
	a, err := u.Repos.App.Find(ctx, in.AppID)
	if err != nil {
		return nil, err
	}
	items, err := u.Repos.Release.List(ctx, a.ProjectID, a.ID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Releases: items}, nil
}
