package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/core/ports"
)

func vesselWriter(uowFactory RegistryUoWFactory) registryWriter[*vessel.Vessel] {
	return registryWriter[*vessel.Vessel]{
		uowFactory: uowFactory,
		kind:       registry.KindVessel,
		repo: func(uow RegistryUoW) ports.RegistryRepository[*vessel.Vessel] {
			return uow.VesselRepository()
		},
	}
}

// CreateVesselCommandHandler persists a new vessel.
type CreateVesselCommandHandler struct {
	writer registryWriter[*vessel.Vessel]
}

func NewCreateVesselCommandHandler(uowFactory RegistryUoWFactory) CreateVesselCommandHandler {
	return CreateVesselCommandHandler{writer: vesselWriter(uowFactory)}
}

func (h CreateVesselCommandHandler) Handle(ctx context.Context, cmd CreateVesselCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.create(ctx, func(id kernel.UUID) (*vessel.Vessel, error) {
		return vessel.NewVessel(id, f.Code, f.Name, f.Country, f.Details)
	})
}

type UpdateVesselCommandHandler struct {
	writer registryWriter[*vessel.Vessel]
}

func NewUpdateVesselCommandHandler(uowFactory RegistryUoWFactory) UpdateVesselCommandHandler {
	return UpdateVesselCommandHandler{writer: vesselWriter(uowFactory)}
}

func (h UpdateVesselCommandHandler) Handle(ctx context.Context, cmd UpdateVesselCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.update(ctx, cmd.ID(), func(r *vessel.Vessel) error {
		return r.Update(f.Code, f.Name, f.Country, f.Details)
	})
}
