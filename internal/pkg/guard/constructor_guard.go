// Package guard holds ConstructorGuard, embedded by commands and queries so that a
// zero value built around the constructor is rejected by Validate.
package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// for a guard that did not come from NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
