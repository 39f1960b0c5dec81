package commands

import (
	"context"

	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
)

func incotermWriter(uowFactory RegistryUoWFactory) registryWriter[*incoterm.Incoterm] {
	return registryWriter[*incoterm.Incoterm]{
		uowFactory: uowFactory,
		kind:       registry.KindIncoterm,
		repo: func(uow RegistryUoW) ports.RegistryRepository[*incoterm.Incoterm] {
			return uow.IncotermRepository()
		},
	}
}

type CreateIncotermCommandHandler struct {
	writer registryWriter[*incoterm.Incoterm]
}

func NewCreateIncotermCommandHandler(uowFactory RegistryUoWFactory) CreateIncotermCommandHandler {
	return CreateIncotermCommandHandler{writer: incotermWriter(uowFactory)}
}

func (h CreateIncotermCommandHandler) Handle(ctx context.Context, cmd CreateIncotermCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.create(ctx, func(id kernel.UUID) (*incoterm.Incoterm, error) {
		return incoterm.NewIncoterm(id, f.Code, f.Name, f.Details)
	})
}

// UpdateIncotermCommandHandler overwrites a trade term. Renaming "fob" to an
// existing "FOB" collides after normalization.
type UpdateIncotermCommandHandler struct {
	writer registryWriter[*incoterm.Incoterm]
}

func NewUpdateIncotermCommandHandler(uowFactory RegistryUoWFactory) UpdateIncotermCommandHandler {
	return UpdateIncotermCommandHandler{writer: incotermWriter(uowFactory)}
}

func (h UpdateIncotermCommandHandler) Handle(ctx context.Context, cmd UpdateIncotermCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	f := cmd.Fields()
	return h.writer.update(ctx, cmd.ID(), func(r *incoterm.Incoterm) error {
		return r.Update(f.Code, f.Name, f.Details)
	})
}
