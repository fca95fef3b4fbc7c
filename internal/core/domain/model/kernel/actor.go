package kernel

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the marketplace persona an authenticated user acts as.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleDelivery Role = "delivery"
	RoleSalesman Role = "salesman"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleSeller, RoleDelivery, RoleSalesman, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the principal supplied by the auth middleware. Use cases trust it as given.
type Actor struct {
	ID   UUID
	Role Role
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return err
	}
	_, err := ParseRole(string(a.Role))
	return err
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Is reports whether the actor is the user identified by id.
func (a Actor) Is(id UUID) bool {
	return a.ID.IsEqual(id)
}
