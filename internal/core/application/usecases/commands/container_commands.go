package commands

import (
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateContainerCommandIsNotConstructed = errors.New("CreateContainerCommand must be created via NewCreateContainerCommand")
	ErrUpdateContainerCommandIsNotConstructed = errors.New("UpdateContainerCommand must be created via NewUpdateContainerCommand")
)

// ContainerFields are the editable attributes of a container type.
// While all internal dimensions are set Details.Volume must be zero or match
// length × width × height.
type ContainerFields struct {
	Code    string
	Name    string
	Details container.Details
}

// CreateContainerCommand registers a container or package type.
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	fields ContainerFields

	guard guard.ConstructorGuard
}

func NewCreateContainerCommand(fields ContainerFields) (CreateContainerCommand, error) {
	if err := requireCodeAndName(fields.Code, fields.Name); err != nil {
		return CreateContainerCommand{}, err
	}
	return CreateContainerCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

func (c CreateContainerCommand) Fields() ContainerFields {
	return c.fields
}

type UpdateContainerCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	fields ContainerFields

	guard guard.ConstructorGuard
}

func NewUpdateContainerCommand(id kernel.UUID, fields ContainerFields) (UpdateContainerCommand, error) {
	if err := errors.Join(requireID(id), requireCodeAndName(fields.Code, fields.Name)); err != nil {
		return UpdateContainerCommand{}, err
	}
	return UpdateContainerCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateContainerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateContainerCommandIsNotConstructed)
}

func (c UpdateContainerCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateContainerCommand) Fields() ContainerFields {
	return c.fields
}
