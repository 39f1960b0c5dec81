package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateVesselCommandIsNotConstructed = errors.New("CreateVesselCommand must be created via NewCreateVesselCommand")
	ErrUpdateVesselCommandIsNotConstructed = errors.New("UpdateVesselCommand must be created via NewUpdateVesselCommand")
)

// VesselFields are the editable attributes of a vessel.
type VesselFields struct {
	Code    string
	Name    string
	Country kernel.CountryCode
	Details vessel.Details
}

// CreateVesselCommand registers a ship. An IMO number, when given, must
// have exactly seven digits.
type CreateVesselCommand struct { //nolint:recvcheck //using for validation
	fields VesselFields

	guard guard.ConstructorGuard
}

func NewCreateVesselCommand(fields VesselFields) (CreateVesselCommand, error) {
	if err := requireCodeAndName(fields.Code, fields.Name); err != nil {
		return CreateVesselCommand{}, err
	}
	return CreateVesselCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateVesselCommand) Validate() error {
	return c.guard.Validate(ErrCreateVesselCommandIsNotConstructed)
}

func (c CreateVesselCommand) Fields() VesselFields {
	return c.fields
}

type UpdateVesselCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	fields VesselFields

	guard guard.ConstructorGuard
}

func NewUpdateVesselCommand(id kernel.UUID, fields VesselFields) (UpdateVesselCommand, error) {
	if err := errors.Join(requireID(id), requireCodeAndName(fields.Code, fields.Name)); err != nil {
		return UpdateVesselCommand{}, err
	}
	return UpdateVesselCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateVesselCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVesselCommandIsNotConstructed)
}

func (c UpdateVesselCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateVesselCommand) Fields() VesselFields {
	return c.fields
}
