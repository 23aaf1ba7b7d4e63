package file

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for file use cases.
type Repos struct {
	Project domain.ProjectRepository
	File    domain.FileRepository
}

// UseCase wires repositories needed for file use cases.
type UseCase struct {
	Repos *Repos
}
