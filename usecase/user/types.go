package user

import "github.com/shipmight/shipmight/domain"

// Repos holds repositories needed for user use cases.
type Repos struct {
	User domain.UserRepository
}

// UseCase wires repositories needed for user use cases.
type UseCase struct {
	Repos *Repos
	// Cost is the bcrypt cost; zero uses bcrypt.DefaultCost.
	Cost int
}
