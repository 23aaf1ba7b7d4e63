package entity

import (
	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/internal/naming"
)

// DefaultSystemNamespace holds the global-scope entities.
const DefaultSystemNamespace = "shipmight"

// NewRepositories wires every stored entity kind onto objs. The workload
// repositories are left nil.
func NewRepositories(objs objstore.ObjectStore, ids *naming.Allocator, systemNamespace string) *domain.Repositories {
	if systemNamespace == "" {
		systemNamespace = DefaultSystemNamespace
	}
	hooks := NewDeployHookRepository(objs, ids)
	domains := NewDomainRepository(objs, ids)
	return &domain.Repositories{
		Project:      NewProjectRepository(objs, ids),
		App:          NewAppRepository(objs, ids, systemNamespace, hooks, domains),
		Domain:       domains,
		MasterDomain: NewMasterDomainRepository(objs, ids, systemNamespace),
		File:         NewFileRepository(objs, ids),
		Registry:     NewRegistryRepository(objs, ids, systemNamespace),
		DeployHook:   hooks,
		User:         NewUserRepository(objs, ids, systemNamespace),
		AppChart:     NewAppChartRepository(objs, ids, systemNamespace),
	}
}
