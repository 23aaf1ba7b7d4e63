package deployhook

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for deploy hook use cases.
type Repos struct {
	App        domain.AppRepository
	DeployHook domain.DeployHookRepository
}

// UseCase wires repositories needed for deploy hook use cases.
type UseCase struct {
	Repos *Repos
	// NewToken generates hook tokens; nil uses a random 40 character string.
	NewToken func() string
}
