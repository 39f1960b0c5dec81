// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and command objects to tell constructed instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the caller
// passes a nil error, so validation never fails silently.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose invariants are established by a
// constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrPortNotConstructed = errors.New("Port must be created via NewPort")
//
//	type Port struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPort(code string) (*Port, error) {
//	    if code == "" {
//	        return nil, errors.New("code is required")
//	    }
//	    return &Port{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *Port) Validate() error {
//	    return p.guard.Validate(ErrPortNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the owning type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
