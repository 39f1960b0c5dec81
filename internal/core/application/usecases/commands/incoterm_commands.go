package commands

import (
	"errors"

	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateIncotermCommandIsNotConstructed = errors.New("CreateIncotermCommand must be created via NewCreateIncotermCommand")
	ErrUpdateIncotermCommandIsNotConstructed = errors.New("UpdateIncotermCommand must be created via NewUpdateIncotermCommand")
)

// IncotermFields are the editable attributes of a trade term. Code is uppercased
// by the incoterm on every write, uniqueness is checked on the normalized value.
type IncotermFields struct {
	Code    string
	Name    string
	Details incoterm.Details
}

type CreateIncotermCommand struct { //nolint:recvcheck //using for validation
	fields IncotermFields

	guard guard.ConstructorGuard
}

func NewCreateIncotermCommand(fields IncotermFields) (CreateIncotermCommand, error) {
	if err := requireCodeAndName(fields.Code, fields.Name); err != nil {
		return CreateIncotermCommand{}, err
	}
	return CreateIncotermCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateIncotermCommand) Validate() error {
	return c.guard.Validate(ErrCreateIncotermCommandIsNotConstructed)
}

func (c CreateIncotermCommand) Fields() IncotermFields {
	return c.fields
}

type UpdateIncotermCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	fields IncotermFields

	guard guard.ConstructorGuard
}

func NewUpdateIncotermCommand(id kernel.UUID, fields IncotermFields) (UpdateIncotermCommand, error) {
	if err := errors.Join(requireID(id), requireCodeAndName(fields.Code, fields.Name)); err != nil {
		return UpdateIncotermCommand{}, err
	}
	return UpdateIncotermCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateIncotermCommand) Validate() error {
	return c.guard.Validate(ErrUpdateIncotermCommandIsNotConstructed)
}

func (c UpdateIncotermCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateIncotermCommand) Fields() IncotermFields {
	return c.fields
}
