package domain

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for domain use cases.
type Repos struct {
	Project domain.ProjectRepository
	App     domain.AppRepository
	Domain  domain.DomainRepository
}

// UseCase wires repositories needed for domain use cases.
type UseCase struct {
	Repos *Repos
}
