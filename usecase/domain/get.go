package domain

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

type GetInput struct {
	DomainID string `json:"domain_id"`
}

type GetOutput struct {
	Domain *model.Domain `json:"domain"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.DomainID == "" {
		return nil, model.Invalidf("domain id is required")
	}
	d, err := u.Repos.Domain.Find(ctx, in.DomainID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Domain: d}, nil
}
