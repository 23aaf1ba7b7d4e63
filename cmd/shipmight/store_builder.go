package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/adapters/kube"
	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/adapters/store/rdb"
	"github.com/shipmight/shipmight/config/shipmightcfg"
	"github.com/shipmight/shipmight/domain"
	"github.com/shipmight/shipmight/internal/kubeconfig"
	"github.com/shipmight/shipmight/internal/naming"
)

const cmdTimeout = 30 * time.Second

// backend is the wired store for one CLI invocation.
type backend struct {
	cfg     *shipmightcfg.Root
	objects objstore.ObjectStore
	repos   *domain.Repositories
	system  *entity.SystemNamespace
}

// buildBackend opens the object store named by store.url and wires the entity
// repositories on it. Only the kube backend has workload repositories.
func buildBackend(cmd *cobra.Command) (*backend, error) {
	cfg, err := configFrom(cmd)
	if err != nil {
		return nil, err
	}
	u, err := shipmightcfg.ParseStoreURL(cfg.Store.URL)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
	defer cancel()

	b := &backend{cfg: cfg}
	var kc *kube.Client
	switch u.Backend {
	case shipmightcfg.BackendMemory:
		b.objects = inmem.NewStore()
	case shipmightcfg.BackendSQLite:
		db, err := rdb.OpenFromURL(u.DBURL())
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		b.objects = rdb.NewObjectStore(db)
	case shipmightcfg.BackendKube:
		kc, err = buildKubeClient(ctx, cfg, u.Path)
		if err != nil {
			return nil, err
		}
		b.objects = kube.NewObjectStore(kc, cfg.Kube.IngressClass)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", u.Backend)
	}

	ids := naming.NewAllocator(cfg.Naming.NonceLength, cfg.Naming.SlugMaxLength)
	b.repos = entity.NewRepositories(b.objects, ids, cfg.Store.SystemNamespace)
	b.system = &entity.SystemNamespace{Objects: b.objects, Name: cfg.Store.SystemNamespace}
	if kc != nil {
		b.repos.Deployment = kube.NewDeploymentRepository(kc)
		b.repos.Run = kube.NewRunRepository(kc)
		b.repos.Release = kube.NewReleaseRepository(kc)
	}

	// A memory store starts empty on every invocation.
	if u.Backend == shipmightcfg.BackendMemory {
		if _, err := b.system.Ensure(ctx); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func kubeOptions(cfg *shipmightcfg.Root) *kube.Options {
	return &kube.Options{UserAgent: cfg.Kube.UserAgent, QPS: cfg.Kube.QPS, Burst: cfg.Kube.Burst}
}

// buildKubeClient uses the kubeconfig at path when given, else the in-cluster
// or default kubeconfig.
func buildKubeClient(ctx context.Context, cfg *shipmightcfg.Root, path string) (*kube.Client, error) {
	if path == "" {
		return kube.NewClientFromEnvironment(ctx, kubeOptions(cfg))
	}
	kcfg, err := kubeconfig.LoadFile(path, kubeconfig.Options{
		Context:   cfg.Kube.Context,
		Namespace: cfg.Store.SystemNamespace,
	})
	if err != nil {
		return nil, err
	}
	rc, err := kubeconfig.RESTConfig(kcfg)
	if err != nil {
		return nil, err
	}
	return kube.NewClientFromRESTConfig(rc, kubeOptions(cfg))
}
