package appchart

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for app chart use cases.
type Repos struct {
	AppChart domain.AppChartRepository
}

// UseCase wires repositories needed for app chart use cases.
type UseCase struct {
	Repos *Repos
}
