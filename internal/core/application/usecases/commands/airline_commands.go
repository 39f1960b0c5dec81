package commands

import (
	"errors"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateAirlineCommandIsNotConstructed = errors.New("CreateAirlineCommand must be created via NewCreateAirlineCommand")
	ErrUpdateAirlineCommandIsNotConstructed = errors.New("UpdateAirlineCommand must be created via NewUpdateAirlineCommand")
)

// AirlineFields are the editable attributes of an airline.
type AirlineFields struct {
	Code    string
	Name    string
	Country kernel.CountryCode
	Details airline.Details
}

// CreateAirlineCommand registers a carrier. IATA and ICAO codes are checked by
// the airline itself.
type CreateAirlineCommand struct { //nolint:recvcheck //using for validation
	fields AirlineFields

	guard guard.ConstructorGuard
}

func NewCreateAirlineCommand(fields AirlineFields) (CreateAirlineCommand, error) {
	if err := requireCodeAndName(fields.Code, fields.Name); err != nil {
		return CreateAirlineCommand{}, err
	}
	return CreateAirlineCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateAirlineCommand) Validate() error {
	return c.guard.Validate(ErrCreateAirlineCommandIsNotConstructed)
}

func (c CreateAirlineCommand) Fields() AirlineFields {
	return c.fields
}

type UpdateAirlineCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	fields AirlineFields

	guard guard.ConstructorGuard
}

func NewUpdateAirlineCommand(id kernel.UUID, fields AirlineFields) (UpdateAirlineCommand, error) {
	if err := errors.Join(requireID(id), requireCodeAndName(fields.Code, fields.Name)); err != nil {
		return UpdateAirlineCommand{}, err
	}
	return UpdateAirlineCommand{id: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateAirlineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAirlineCommandIsNotConstructed)
}

func (c UpdateAirlineCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateAirlineCommand) Fields() AirlineFields {
	return c.fields
}
