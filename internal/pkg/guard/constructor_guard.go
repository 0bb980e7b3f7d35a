// Package guard enforces that domain objects and commands are only used after
// being built by their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not usable.
// Only NewConstructorGuard produces a guard that validates; a zero-value
// guard always fails.
//
// Example:
//
//	var ErrBouquetIsNotConstructed = errors.New("Bouquet must be created via NewBouquet constructor")
//
//	type Bouquet struct {
//	    flowers []string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (b *Bouquet) Validate() error {
//	    return b.guard.Validate(ErrBouquetIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created through NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
