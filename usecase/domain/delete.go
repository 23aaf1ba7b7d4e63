package domain

import "context"

type DeleteInput struct {
	DomainID string `json:"domain_id"`
}

type DeleteOutput struct{}

func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.DomainID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Domain.Delete(ctx, in.DomainID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
