package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrSeedReferenceDataCommandIsNotConstructed = errors.New(
	"SeedReferenceDataCommand must be created via NewSeedReferenceDataCommand",
)

// SeedReferenceDataCommand requests the standard incoterms and container types.
// It carries no data; the zero value is rejected like any other command.
type SeedReferenceDataCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedReferenceDataCommand() SeedReferenceDataCommand {
	return SeedReferenceDataCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedReferenceDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedReferenceDataCommandIsNotConstructed)
}
