package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
)

func portWriter(uowFactory RegistryUoWFactory) registryWriter[*port.Port] {
	return registryWriter[*port.Port]{
		uowFactory: uowFactory,
		kind:       registry.KindPort,
		repo: func(uow RegistryUoW) ports.RegistryRepository[*port.Port] {
			return uow.PortRepository()
		},
	}
}

// CreatePortCommandHandler persists a new port after checking its code is free.
//
// Example:
//
//	handler := NewCreatePortCommandHandler(uowFactory)
//	action, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // code taken by another port
//	}
type CreatePortCommandHandler struct {
	writer registryWriter[*port.Port]
}

func NewCreatePortCommandHandler(uowFactory RegistryUoWFactory) CreatePortCommandHandler {
	return CreatePortCommandHandler{writer: portWriter(uowFactory)}
}

func (h CreatePortCommandHandler) Handle(ctx context.Context, cmd CreatePortCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.create(ctx, func(id kernel.UUID) (*port.Port, error) {
		return port.NewPort(id, f.Code, f.Name, f.Country, f.Modes, f.Details)
	})
}

// UpdatePortCommandHandler overwrites a port. The transport flag rule is checked
// again on every update.
type UpdatePortCommandHandler struct {
	writer registryWriter[*port.Port]
}

func NewUpdatePortCommandHandler(uowFactory RegistryUoWFactory) UpdatePortCommandHandler {
	return UpdatePortCommandHandler{writer: portWriter(uowFactory)}
}

func (h UpdatePortCommandHandler) Handle(ctx context.Context, cmd UpdatePortCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.update(ctx, cmd.ID(), func(p *port.Port) error {
		return p.Update(f.Code, f.Name, f.Country, f.Modes, f.Details)
	})
}
