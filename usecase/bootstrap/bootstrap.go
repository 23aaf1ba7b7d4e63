// Package bootstrap prepares an empty store for first use.
package bootstrap

import (
	"context"

	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/domain/model"
	"github.com/shipmight/shipmight/internal/logging"
	"github.com/shipmight/shipmight/usecase/user"
)

// SystemNamespace creates the namespace holding global entities.
type SystemNamespace interface {
	Ensure(ctx context.Context) (created bool, err error)
}

// Repos holds repositories needed for bootstrapping.
type Repos struct {
	AppChart domain.AppChartRepository
	User     domain.UserRepository
}

// UseCase wires repositories needed for bootstrapping.
type UseCase struct {
	Repos           *Repos
	SystemNamespace SystemNamespace
	// Users creates the initial admin account.
	Users *user.UseCase
}

// DefaultAppChart is installed when no app chart exists.
func DefaultAppChart() *model.AppChart {
	return &model.AppChart{
		Name: "Web service",
		Fields: []model.AppChartField{
			{Name: "image", Label: "Image", Type: model.FieldText, Required: true},
			{Name: "registry", Label: "Registry", Type: model.FieldRegistrySelect},
			{Name: "port", Label: "Container port", Type: model.FieldNumber},
			{Name: "replicas", Label: "Replicas", Type: model.FieldNumber},
			{Name: "files", Label: "Files", Type: model.FieldFileMount},
		},
	}
}

// EnsureInput optionally names an initial admin account. It is only created
// while the store has no users.
type EnsureInput struct {
	AdminUsername string `json:"admin_username,omitempty"`
	AdminPassword string `json:"admin_password,omitempty"`
}

// EnsureOutput reports what was created. Running Ensure again creates nothing.
type EnsureOutput struct {
	CreatedNamespace bool            `json:"created_namespace"`
	AppChart         *model.AppChart `json:"app_chart,omitempty"`
	Admin            *model.User     `json:"admin,omitempty"`
}

// Ensure creates the system namespace, the default app chart and the admin
// account when they are missing.
func (u *UseCase) Ensure(ctx context.Context, in *EnsureInput) (*EnsureOutput, error) {
	logger := logging.FromContext(ctx)
	out := &EnsureOutput{}

	created, err := u.SystemNamespace.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	out.CreatedNamespace = created

	charts, err := u.Repos.AppChart.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(charts) == 0 {
		c, err := u.Repos.AppChart.Create(ctx, DefaultAppChart())
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Bootstrap:Ensure/appchart", "id", c.ID)
		out.AppChart = c
	}

	if in != nil && in.AdminUsername != "" {
		users, err := u.Repos.User.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(users) == 0 {
			res, err := u.Users.Create(ctx, &user.CreateInput{Username: in.AdminUsername, Password: in.AdminPassword})
			if err != nil {
				return nil, err
			}
			logger.Info(ctx, "Bootstrap:Ensure/admin", "username", res.User.Username)
			out.Admin = res.User
		}
	}
	return out, nil
}
