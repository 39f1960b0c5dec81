package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/guard"
)

var ErrSetRegistryRecordActiveCommandIsNotConstructed = errors.New(
	"SetRegistryRecordActiveCommand must be created via NewSetRegistryRecordActiveCommand",
)

// SetRegistryRecordActiveCommand archives (active == false) or restores a registry record.
// Archived records stay readable and referenced, they only leave the list views.
type SetRegistryRecordActiveCommand struct { //nolint:recvcheck //using for validation
	kind   registry.Kind
	id     kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewSetRegistryRecordActiveCommand(kind registry.Kind, id kernel.UUID, active bool) (SetRegistryRecordActiveCommand, error) {
	cmd := SetRegistryRecordActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setID(id),
	); err != nil {
		return SetRegistryRecordActiveCommand{}, err
	}

	return cmd, nil
}

func (c SetRegistryRecordActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetRegistryRecordActiveCommandIsNotConstructed)
}

func (c SetRegistryRecordActiveCommand) Kind() registry.Kind {
	return c.kind
}

func (c SetRegistryRecordActiveCommand) ID() kernel.UUID {
	return c.id
}

func (c SetRegistryRecordActiveCommand) Active() bool {
	return c.active
}

func (c *SetRegistryRecordActiveCommand) setKind(kind registry.Kind) error {
	k, err := registry.ParseKind(kind.String())
	if err != nil {
		return err
	}
	c.kind = k
	return nil
}

func (c *SetRegistryRecordActiveCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
