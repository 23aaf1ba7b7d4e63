package masterdomain

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create a master domain. TLSCert and TLSKey are
// PEM text and must be given together.
type CreateInput struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	TLSCert  string `json:"tls_cert,omitempty" yaml:"tlsCert,omitempty"`
	TLSKey   string `json:"tls_key,omitempty" yaml:"tlsKey,omitempty"`
}

type CreateOutput struct {
	MasterDomain *model.MasterDomain `json:"master_domain"`
}

func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Hostname == "" {
		return nil, model.Invalidf("master domain hostname is required")
	}
	d, err := u.Repos.MasterDomain.Create(ctx, &model.MasterDomain{Hostname: in.Hostname, TLSCert: in.TLSCert, TLSKey: in.TLSKey})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{MasterDomain: d}, nil
}

type GetInput struct {
	MasterDomainID string `json:"master_domain_id"`
}

type GetOutput struct {
	MasterDomain *model.MasterDomain `json:"master_domain"`
}

func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.MasterDomainID == "" {
		return nil, model.Invalidf("master domain id is required")
	}
	d, err := u.Repos.MasterDomain.Find(ctx, in.MasterDomainID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{MasterDomain: d}, nil
}

type ListInput struct{}

type ListOutput struct {
	MasterDomains []*model.MasterDomain `json:"master_domains"`
}

func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.MasterDomain.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{MasterDomains: items}, nil
}

// UpdateInput replaces the hostname or the certificate pair. An empty
// TLSCert and TLSKey pair removes the certificate.
type UpdateInput struct {
	MasterDomainID string  `json:"master_domain_id"`
	Hostname       *string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	TLSCert        *string `json:"tls_cert,omitempty" yaml:"tlsCert,omitempty"`
	TLSKey         *string `json:"tls_key,omitempty" yaml:"tlsKey,omitempty"`
}

type UpdateOutput struct {
	MasterDomain *model.MasterDomain `json:"master_domain"`
}

func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.MasterDomainID == "" {
		return nil, model.Invalidf("master domain id is required")
	}
	d, err := u.Repos.MasterDomain.Update(ctx, in.MasterDomainID, func(d *model.MasterDomain) error {
		if in.Hostname != nil {
			d.Hostname = *in.Hostname
		}
		if in.TLSCert != nil {
			d.TLSCert = *in.TLSCert
		}
		if in.TLSKey != nil {
			d.TLSKey = *in.TLSKey
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{MasterDomain: d}, nil
}

type DeleteInput struct {
	MasterDomainID string `json:"master_domain_id"`
}

type DeleteOutput struct{}

func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.MasterDomainID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.MasterDomain.Delete(ctx, in.MasterDomainID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
