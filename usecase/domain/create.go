package domain

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// CreateInput contains data to create a domain.
type CreateInput struct {
	ProjectID string `json:"project_id" yaml:"projectId"`
	Hostname  string `json:"hostname" yaml:"hostname"`
	// Path defaults to "/".
	Path          string `json:"path,omitempty" yaml:"path,omitempty"`
	AppID         string `json:"app_id,omitempty" yaml:"appId,omitempty"`
	AppPort       int32  `json:"app_port,omitempty" yaml:"appPort,omitempty"`
	TLSSecretName string `json:"tls_secret_name,omitempty" yaml:"tlsSecretName,omitempty"`
}

// CreateOutput wraps the created domain.
type CreateOutput struct {
	Domain *model.Domain `json:"domain"`
}

// Create persists a new domain. Hostnames are unique across all projects.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Hostname == "" {
		return nil, model.Invalidf("domain hostname is required")
	}
	if in.ProjectID == "" {
		return nil, model.Invalidf("domain project is required")
	}
	if _, err := u.Repos.Project.Find(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	if err := u.checkApp(ctx, in.ProjectID, in.AppID); err != nil {
		return nil, err
	}
	d, err := u.Repos.Domain.Create(ctx, &model.Domain{
		ProjectID:     in.ProjectID,
		Hostname:      in.Hostname,
		Path:          in.Path,
		AppID:         in.AppID,
		AppPort:       in.AppPort,
		TLSSecretName: in.TLSSecretName,
	})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Domain: d}, nil
}

// checkApp rejects attaching a domain to an app of another project.
func (u *UseCase) checkApp(ctx context.Context, projectID, appID string) error {
	if appID == "" {
		return nil
	}
	a, err := u.Repos.App.FindIfExists(ctx, appID)
	if err != nil {
		return err
	}
	if a == nil || a.ProjectID != projectID {
		return model.Invalidf("app %q does not exist in project %q", appID, projectID)
	}
	return nil
}
