package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/pkg/guard"
)

var (
	ErrCreatePortCommandIsNotConstructed = errors.New("CreatePortCommand must be created via NewCreatePortCommand")
	ErrUpdatePortCommandIsNotConstructed = errors.New("UpdatePortCommand must be created via NewUpdatePortCommand")
)

// PortFields are the editable attributes of a port.
type PortFields struct {
	Code    string
	Name    string
	Country kernel.CountryCode
	Modes   port.Modes
	Details port.Details
}

// CreatePortCommand registers a new port.
//
// Example:
//
//	cmd, err := NewCreatePortCommand(PortFields{
//	    Code: "AEJEA", Name: "Jebel Ali", Country: "AE",
//	    Modes: port.Modes{Ocean: true, Land: true},
//	})
type CreatePortCommand struct { //nolint:recvcheck //using for validation
	fields PortFields

	guard guard.ConstructorGuard
}

func NewCreatePortCommand(fields PortFields) (CreatePortCommand, error) {
	if err := requireCodeAndName(fields.Code, fields.Name); err != nil {
		return CreatePortCommand{}, err
	}
	return CreatePortCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePortCommand) Validate() error {
	return c.guard.Validate(ErrCreatePortCommandIsNotConstructed)
}

func (c CreatePortCommand) Fields() PortFields {
	return c.fields
}

// UpdatePortCommand overwrites every editable attribute of an existing port.
type UpdatePortCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	fields PortFields

	guard guard.ConstructorGuard
}

func NewUpdatePortCommand(id kernel.UUID, fields PortFields) (UpdatePortCommand, error) {
	if err := errors.Join(requireID(id), requireCodeAndName(fields.Code, fields.Name)); err != nil {
		return UpdatePortCommand{}, err
	}
	return UpdatePortCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePortCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePortCommandIsNotConstructed)
}

func (c UpdatePortCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdatePortCommand) Fields() PortFields {
	return c.fields
}
