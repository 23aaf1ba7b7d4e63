package app

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for app use cases.
type Repos struct {
	Project  domain.ProjectRepository
	App      domain.AppRepository
	AppChart domain.AppChartRepository
}

// UseCase wires repositories needed for app use cases.
type UseCase struct {
	Repos *Repos
}
