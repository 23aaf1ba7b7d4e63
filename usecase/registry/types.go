package registry

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for registry use cases.
type Repos struct {
	Registry domain.RegistryRepository
}

// UseCase wires repositories needed for registry use cases.
type UseCase struct {
	Repos *Repos
}
