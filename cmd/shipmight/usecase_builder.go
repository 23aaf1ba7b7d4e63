package main

import (
	"github.com/shipmight/shipmight/usecase/app"
	"github.com/shipmight/shipmight/usecase/appchart"
	"github.com/shipmight/shipmight/usecase/bootstrap"
	"github.com/shipmight/shipmight/usecase/deployhook"
	"github.com/shipmight/shipmight/usecase/deployment"
	dom "github.com/shipmight/shipmight/usecase/domain"
	"github.com/shipmight/shipmight/usecase/file"
	"github.com/shipmight/shipmight/usecase/masterdomain"
	"github.com/shipmight/shipmight/usecase/project"
	"github.com/shipmight/shipmight/usecase/registry"
	"github.com/shipmight/shipmight/usecase/release"
	"github.com/shipmight/shipmight/usecase/run"
	"github.com/shipmight/shipmight/usecase/user"
)

func (b *backend) projectUseCase() *project.UseCase {
	return &project.UseCase{Repos: &project.Repos{Project: b.repos.Project}}
}

func (b *backend) appUseCase() *app.UseCase {
	return &app.UseCase{Repos: &app.Repos{Project: b.repos.Project, App: b.repos.App, AppChart: b.repos.AppChart}}
}

func (b *backend) appChartUseCase() *appchart.UseCase {
	return &appchart.UseCase{Repos: &appchart.Repos{AppChart: b.repos.AppChart}}
}

func (b *backend) domainUseCase() *dom.UseCase {
	return &dom.UseCase{Repos: &dom.Repos{Project: b.repos.Project, App: b.repos.App, Domain: b.repos.Domain}}
}

func (b *backend) masterDomainUseCase() *masterdomain.UseCase {
	return &masterdomain.UseCase{Repos: &masterdomain.Repos{MasterDomain: b.repos.MasterDomain}}
}

func (b *backend) fileUseCase() *file.UseCase {
	return &file.UseCase{Repos: &file.Repos{Project: b.repos.Project, File: b.repos.File}}
}

func (b *backend) registryUseCase() *registry.UseCase {
	return &registry.UseCase{Repos: &registry.Repos{Registry: b.repos.Registry}}
}

func (b *backend) deployHookUseCase() *deployhook.UseCase {
	return &deployhook.UseCase{Repos: &deployhook.Repos{App: b.repos.App, DeployHook: b.repos.DeployHook}}
}

func (b *backend) userUseCase() *user.UseCase {
	return &user.UseCase{Repos: &user.Repos{User: b.repos.User}}
}

func (b *backend) deploymentUseCase() *deployment.UseCase {
	return &deployment.UseCase{Repos: &deployment.Repos{App: b.repos.App, Deployment: b.repos.Deployment}}
}

func (b *backend) runUseCase() *run.UseCase {
	return &run.UseCase{Repos: &run.Repos{App: b.repos.App, Run: b.repos.Run}}
}

func (b *backend) releaseUseCase() *release.UseCase {
	return &release.UseCase{Repos: &release.Repos{App: b.repos.App, Release: b.repos.Release}}
}

func (b *backend) bootstrapUseCase() *bootstrap.UseCase {
	return &bootstrap.UseCase{
		Repos:           &bootstrap.Repos{AppChart: b.repos.AppChart, User: b.repos.User},
		SystemNamespace: b.system,
		Users:           b.userUseCase(),
	}
}
