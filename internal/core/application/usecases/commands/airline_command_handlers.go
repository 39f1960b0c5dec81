package commands

import (
	"context"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
)

func airlineWriter(uowFactory RegistryUoWFactory) registryWriter[*airline.Airline] {
	return registryWriter[*airline.Airline]{
		uowFactory: uowFactory,
		kind:       registry.KindAirline,
		repo: func(uow RegistryUoW) ports.RegistryRepository[*airline.Airline] {
			return uow.AirlineRepository()
		},
	}
}

// CreateAirlineCommandHandler persists a new airline once its code is known to be free.
type CreateAirlineCommandHandler struct {
	writer registryWriter[*airline.Airline]
}

func NewCreateAirlineCommandHandler(uowFactory RegistryUoWFactory) CreateAirlineCommandHandler {
	return CreateAirlineCommandHandler{writer: airlineWriter(uowFactory)}
}

func (h CreateAirlineCommandHandler) Handle(ctx context.Context, cmd CreateAirlineCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.create(ctx, func(id kernel.UUID) (*airline.Airline, error) {
		return airline.NewAirline(id, f.Code, f.Name, f.Country, f.Details)
	})
}

// UpdateAirlineCommandHandler overwrites an airline.
type UpdateAirlineCommandHandler struct {
	writer registryWriter[*airline.Airline]
}

func NewUpdateAirlineCommandHandler(uowFactory RegistryUoWFactory) UpdateAirlineCommandHandler {
	return UpdateAirlineCommandHandler{writer: airlineWriter(uowFactory)}
}

func (h UpdateAirlineCommandHandler) Handle(ctx context.Context, cmd UpdateAirlineCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.update(ctx, cmd.ID(), func(r *airline.Airline) error {
		return r.Update(f.Code, f.Name, f.Country, f.Details)
	})
}
