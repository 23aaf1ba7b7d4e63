package domain

import (
	"context"

	"github.com/shipmight/shipmight/domain/model"
)

// ListFilter narrows project-scoped listings. Empty fields do not filter.
type ListFilter struct {
	ProjectID string
	AppID     string
}

// ProjectRepository stores and retrieves projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	FindIfExists(ctx context.Context, id string) (*model.Project, error)
	Find(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	Update(ctx context.Context, id string, mutate func(*model.Project) error) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// AppRepository stores and retrieves apps.
type AppRepository interface {
	List(ctx context.Context, f ListFilter) ([]*model.App, error)
	FindIfExists(ctx context.Context, id string) (*model.App, error)
	Find(ctx context.Context, id string) (*model.App, error)
	Create(ctx context.Context, a *model.App) (*model.App, error)
	Update(ctx context.Context, id string, mutate func(*model.App) error) (*model.App, error)
	Delete(ctx context.Context, id string) error
}

// DomainRepository stores and retrieves domains.
type DomainRepository interface {
	List(ctx context.Context, f ListFilter) ([]*model.Domain, error)
	FindIfExists(ctx context.Context, id string) (*model.Domain, error)
	Find(ctx context.Context, id string) (*model.Domain, error)
	Create(ctx context.Context, d *model.Domain) (*model.Domain, error)
	Update(ctx context.Context, id string, mutate func(*model.Domain) error) (*model.Domain, error)
	Delete(ctx context.Context, id string) error
}

// MasterDomainRepository stores and retrieves master domains.
type MasterDomainRepository interface {
	List(ctx context.Context) ([]*model.MasterDomain, error)
	FindIfExists(ctx context.Context, id string) (*model.MasterDomain, error)
	Find(ctx context.Context, id string) (*model.MasterDomain, error)
	Create(ctx context.Context, d *model.MasterDomain) (*model.MasterDomain, error)
	Update(ctx context.Context, id string, mutate func(*model.MasterDomain) error) (*model.MasterDomain, error)
	Delete(ctx context.Context, id string) error
}

// FileRepository stores and retrieves files.
type FileRepository interface {
	List(ctx context.Context, f ListFilter) ([]*model.File, error)
	FindIfExists(ctx context.Context, id string) (*model.File, error)
	Find(ctx context.Context, id string) (*model.File, error)
	Create(ctx context.Context, f *model.File) (*model.File, error)
	Update(ctx context.Context, id string, mutate func(*model.File) error) (*model.File, error)
	Delete(ctx context.Context, id string) error
	// Usage groups the apps mounting each file by file id.
	Usage(ctx context.Context, projectID string) (map[string][]*model.App, error)
}

// RegistryRepository stores and retrieves registries.
type RegistryRepository interface {
	List(ctx context.Context) ([]*model.Registry, error)
	FindIfExists(ctx context.Context, id string) (*model.Registry, error)
	Find(ctx context.Context, id string) (*model.Registry, error)
	Create(ctx context.Context, r *model.Registry) (*model.Registry, error)
	Update(ctx context.Context, id string, mutate func(*model.Registry) error) (*model.Registry, error)
	Delete(ctx context.Context, id string) error
	// Usage groups the apps selecting each registry by registry id.
	Usage(ctx context.Context) (map[string][]*model.App, error)
}

// DeployHookRepository stores and retrieves deploy hooks.
type DeployHookRepository interface {
	List(ctx context.Context, f ListFilter) ([]*model.DeployHook, error)
	FindIfExists(ctx context.Context, id string) (*model.DeployHook, error)
	Find(ctx context.Context, id string) (*model.DeployHook, error)
	Create(ctx context.Context, h *model.DeployHook) (*model.DeployHook, error)
	Update(ctx context.Context, id string, mutate func(*model.DeployHook) error) (*model.DeployHook, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository stores and retrieves users.
type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	FindIfExists(ctx context.Context, id string) (*model.User, error)
	Find(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, id string, mutate func(*model.User) error) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// AppChartRepository stores and retrieves app charts.
type AppChartRepository interface {
	List(ctx context.Context) ([]*model.AppChart, error)
	FindIfExists(ctx context.Context, id string) (*model.AppChart, error)
	Find(ctx context.Context, id string) (*model.AppChart, error)
	Create(ctx context.Context, c *model.AppChart) (*model.AppChart, error)
	Update(ctx context.Context, id string, mutate func(*model.AppChart) error) (*model.AppChart, error)
	Delete(ctx context.Context, id string) error
}

// DeploymentRepository reads service revisions of an app from the cluster.
type DeploymentRepository interface {
	List(ctx context.Context, projectID, appID string) ([]*model.Deployment, error)
}

// RunRepository reads batch job executions of an app from the cluster.
type RunRepository interface {
	List(ctx context.Context, projectID, appID string) ([]*model.Run, error)
	Find(ctx context.Context, projectID, id string) (*model.Run, error)
}

// ReleaseRepository reads installed chart revisions of an app.
type ReleaseRepository interface {
	List(ctx context.Context, projectID, appID string) ([]*model.Release, error)
}

// Repositories groups repository interfaces. The read-only workload
// repositories are nil when the backend has no cluster behind it.
type Repositories struct {
	Project      ProjectRepository
	App          AppRepository
	Domain       DomainRepository
	MasterDomain MasterDomainRepository
	File         FileRepository
	Registry     RegistryRepository
	DeployHook   DeployHookRepository
	User         UserRepository
	AppChart     AppChartRepository
	Deployment   DeploymentRepository
	Run          RunRepository
	Release      ReleaseRepository
}
