// Package ports defines the persistence contracts of the freight domain.
// Implementations live in internal/adapters/out.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
)

// RegistryRepository is the persistence contract shared by every reference
// registry (ports, vessels, airlines, incoterms, container types).
type RegistryRepository[T registry.Record] interface {
	// Add persists a new record. A code already taken yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, record T) error

	// Update persists changes to an existing record, including its active flag.
	Update(ctx context.Context, record T) error

	// Get returns the record with the given id, archived or not.
	Get(ctx context.Context, id kernel.UUID) (T, error)

	// CodeExists reports whether another record already uses code. The match is
	// exact and case-sensitive. The record identified by excludeID is ignored,
	// which lets an update keep its own code.
	CodeExists(ctx context.Context, code string, excludeID *kernel.UUID) (bool, error)
}
