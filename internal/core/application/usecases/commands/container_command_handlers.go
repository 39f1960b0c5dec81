package commands

import (
	"context"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
)

func containerWriter(uowFactory RegistryUoWFactory) registryWriter[*container.Container] {
	return registryWriter[*container.Container]{
		uowFactory: uowFactory,
		kind:       registry.KindContainer,
		repo: func(uow RegistryUoW) ports.RegistryRepository[*container.Container] {
			return uow.ContainerRepository()
		},
	}
}

// CreateContainerCommandHandler persists a new container type.
type CreateContainerCommandHandler struct {
	writer registryWriter[*container.Container]
}

func NewCreateContainerCommandHandler(uowFactory RegistryUoWFactory) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{writer: containerWriter(uowFactory)}
}

func (h CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.create(ctx, func(id kernel.UUID) (*container.Container, error) {
		return container.NewContainer(id, f.Code, f.Name, f.Details)
	})
}

type UpdateContainerCommandHandler struct {
	writer registryWriter[*container.Container]
}

func NewUpdateContainerCommandHandler(uowFactory RegistryUoWFactory) UpdateContainerCommandHandler {
	return UpdateContainerCommandHandler{writer: containerWriter(uowFactory)}
}

func (h UpdateContainerCommandHandler) Handle(ctx context.Context, cmd UpdateContainerCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.update(ctx, cmd.ID(), func(r *container.Container) error {
		return r.Update(f.Code, f.Name, f.Details)
	})
}
