package masterdomain

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for master domain use cases.
type Repos struct {
	MasterDomain domain.MasterDomainRepository
}

// UseCase wires repositories needed for master domain use cases.
type UseCase struct {
	Repos *Repos
}
