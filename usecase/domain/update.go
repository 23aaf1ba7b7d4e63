package domain

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// UpdateInput specifies domain fields that can be changed. Setting AppID to
// an empty string detaches the domain.
type UpdateInput struct {
	DomainID      string  `json:"domain_id"`
	Hostname      *string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Path          *string `json:"path,omitempty" yaml:"path,omitempty"`
	AppID         *string `json:"app_id,omitempty" yaml:"appId,omitempty"`
	AppPort       *int32  `json:"app_port,omitempty" yaml:"appPort,omitempty"`
	TLSSecretName *string `json:"tls_secret_name,omitempty" yaml:"tlsSecretName,omitempty"`
}

type UpdateOutput struct {
	Domain *model.Domain `json:"domain"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.DomainID == "" {
		return nil, model.Invalidf("domain id is required")
	}
	cur, err := u.Repos.Domain.Find(ctx, in.DomainID)
	if err != nil {
		return nil, err
	}
	if in.AppID != nil {
		if err := u.checkApp(ctx, cur.ProjectID, *in.AppID); err != nil {
			return nil, err
		}
	}
	d, err := u.Repos.Domain.Update(ctx, in.DomainID, func(d *model.Domain) error {
		if in.Hostname != nil {
			d.Hostname = *in.Hostname
		}
		if in.Path != nil {
			d.Path = *in.Path
		}
		if in.AppID != nil {
			d.AppID = *in.AppID
			if d.AppID == "" {
				d.AppPort = 0
			}
		}
		if in.AppPort != nil {
			d.AppPort = *in.AppPort
		}
		if in.TLSSecretName != nil {
			d.TLSSecretName = *in.TLSSecretName
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Domain: d}, nil
}
